package sim

import (
	"fmt"

	"ubithal/hal"
)

// Display dimensions of the simulated LED matrix.
const (
	DisplayWidth  = 5
	DisplayHeight = 5
)

// Display is the simulated LED matrix.
type Display struct {
	pixels   [DisplayHeight][DisplayWidth]uint8
	enabled  bool
	light    int
	rotation hal.Rotation
}

// NewDisplay returns an enabled, dark display.
func NewDisplay() *Display {
	return &Display{enabled: true}
}

// SetLightLevel sets the ambient light estimate reads return.
func (d *Display) SetLightLevel(v int) { d.light = v }

// Enabled reports whether the display scan is on.
func (d *Display) Enabled() bool { return d.enabled }

// Rotation returns the current rotation.
func (d *Display) Rotation() hal.Rotation { return d.rotation }

func (d *Display) check(x, y int) error {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return fmt.Errorf("sim: pixel (%d,%d) out of range", x, y)
	}
	return nil
}

func (d *Display) SetEnabled(on bool) error {
	d.enabled = on
	return nil
}

func (d *Display) SetPixel(x, y int, raw uint8) error {
	if err := d.check(x, y); err != nil {
		return err
	}
	d.pixels[y][x] = raw
	return nil
}

func (d *Display) Pixel(x, y int) (uint8, error) {
	if err := d.check(x, y); err != nil {
		return 0, err
	}
	return d.pixels[y][x], nil
}

func (d *Display) LightLevel() (int, error) {
	return d.light, nil
}

func (d *Display) SetRotation(r hal.Rotation) error {
	d.rotation = r
	return nil
}
