package hal

// Rotation is the display orientation, in 90 degree steps clockwise.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// DisplayDriver is the LED matrix display. Pixel values are raw device
// intensities (0-255); the Board maps the 10-level brightness scale onto
// them and back.
type DisplayDriver interface {
	// SetEnabled turns the display scan on or off.
	SetEnabled(on bool) error

	// SetPixel sets the raw intensity of one pixel.
	SetPixel(x, y int, raw uint8) error

	// Pixel returns the raw intensity of one pixel.
	Pixel(x, y int) (uint8, error)

	// LightLevel returns the ambient light estimate (0-255) derived from
	// the LED matrix sense lines.
	LightLevel() (int, error)

	// SetRotation rotates the display output.
	SetRotation(r Rotation) error
}
