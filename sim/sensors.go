package sim

import (
	"fmt"

	"ubithal/hal"
)

// Accel is the simulated accelerometer. Samples are in milli-g.
type Accel struct {
	x, y, z  int
	gestures []hal.Gesture
	rangeG   int

	Fail error
}

// SetSample sets the acceleration the next sample returns.
func (a *Accel) SetSample(x, y, z int) {
	a.x, a.y, a.z = x, y, z
}

// PushGesture queues a gesture; each Gesture() read pops one, then
// GestureNone once the queue drains.
func (a *Accel) PushGesture(g hal.Gesture) {
	a.gestures = append(a.gestures, g)
}

// Range returns the configured full-scale range in g.
func (a *Accel) Range() int { return a.rangeG }

func (a *Accel) Sample() (x, y, z int, err error) {
	if a.Fail != nil {
		return 0, 0, 0, a.Fail
	}
	return a.x, a.y, a.z, nil
}

func (a *Accel) Gesture() (hal.Gesture, error) {
	if a.Fail != nil {
		return hal.GestureNone, a.Fail
	}
	if len(a.gestures) == 0 {
		return hal.GestureNone, nil
	}
	g := a.gestures[0]
	a.gestures = a.gestures[1:]
	return g, nil
}

func (a *Accel) SetRange(g int) error {
	if a.Fail != nil {
		return a.Fail
	}
	switch g {
	case 2, 4, 8:
		a.rangeG = g
		return nil
	}
	return fmt.Errorf("sim: unsupported accelerometer range %dg", g)
}

// Compass is the simulated magnetometer. Samples are in nanotesla.
type Compass struct {
	x, y, z    int
	field      int
	heading    int
	calibrated bool

	// Calibrations counts Calibrate runs.
	Calibrations int

	Fail error
}

// SetSample sets the field the next sample returns.
func (c *Compass) SetSample(x, y, z int) {
	c.x, c.y, c.z = x, y, z
}

// SetFieldStrength sets the reported field magnitude.
func (c *Compass) SetFieldStrength(v int) { c.field = v }

// SetHeading sets the reported heading in degrees.
func (c *Compass) SetHeading(v int) { c.heading = v }

func (c *Compass) Sample() (x, y, z int, err error) {
	if c.Fail != nil {
		return 0, 0, 0, c.Fail
	}
	return c.x, c.y, c.z, nil
}

func (c *Compass) Calibrated() (bool, error) {
	if c.Fail != nil {
		return false, c.Fail
	}
	return c.calibrated, nil
}

func (c *Compass) ClearCalibration() error {
	if c.Fail != nil {
		return c.Fail
	}
	c.calibrated = false
	return nil
}

func (c *Compass) Calibrate() error {
	if c.Fail != nil {
		return c.Fail
	}
	c.calibrated = true
	c.Calibrations++
	return nil
}

func (c *Compass) FieldStrength() (int, error) {
	if c.Fail != nil {
		return 0, c.Fail
	}
	return c.field, nil
}

func (c *Compass) Heading() (int, error) {
	if c.Fail != nil {
		return 0, c.Fail
	}
	return c.heading, nil
}
