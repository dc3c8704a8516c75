package hal

import "math/bits"

// brightMap maps the 10-level brightness scale onto raw device
// intensities. The raw space is non-linear; these give a set of visually
// distinct levels.
var brightMap = [10]uint8{0, 1, 2, 4, 8, 16, 32, 64, 128, 255}

// rotationMap maps the runtime's quarter-turn count onto driver
// rotations.
var rotationMap = [4]Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

// DisplayEnable turns the display scan on or off.
func (b *Board) DisplayEnable(on bool) error {
	if b.dev.Display == nil {
		return missingErr("display")
	}
	return b.dev.Display.SetEnabled(on)
}

// DisplaySetPixel sets one pixel's brightness on the 10-level scale.
// Levels below 0 clamp to 0, above 9 to 9.
func (b *Board) DisplaySetPixel(x, y, bright int) error {
	if b.dev.Display == nil {
		return missingErr("display")
	}
	if bright < 0 {
		bright = 0
	} else if bright > 9 {
		bright = 9
	}
	return b.dev.Display.SetPixel(x, y, brightMap[bright])
}

// DisplayPixel returns one pixel's brightness on the 10-level scale,
// inverting the raw intensity by bit length. Exact for the ten canonical
// raw values; other intensities map to the nearest lower level.
func (b *Board) DisplayPixel(x, y int) (int, error) {
	if b.dev.Display == nil {
		return 0, missingErr("display")
	}
	raw, err := b.dev.Display.Pixel(x, y)
	if err != nil {
		return 0, err
	}
	if raw == 255 {
		return 9, nil
	}
	return bits.Len8(raw), nil
}

// DisplayLightLevel returns the ambient light estimate.
func (b *Board) DisplayLightLevel() (int, error) {
	if b.dev.Display == nil {
		return 0, missingErr("display")
	}
	return b.dev.Display.LightLevel()
}

// DisplayRotate rotates the display by the given number of quarter
// turns. Only the low two bits are significant.
func (b *Board) DisplayRotate(quarterTurns int) error {
	if b.dev.Display == nil {
		return missingErr("display")
	}
	return b.dev.Display.SetRotation(rotationMap[quarterTurns&3])
}
