package hal

// Gesture is a recognized accelerometer gesture code. The values match
// the event codes the firmware runtime expects.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureTiltUp
	GestureTiltDown
	GestureTiltLeft
	GestureTiltRight
	GestureFaceUp
	GestureFaceDown
	GestureFreefall
	Gesture3G
	Gesture6G
	Gesture8G
	GestureShake
	Gesture2G
)

// Accelerometer is the 3-axis motion sensor. Samples are in milli-g.
type Accelerometer interface {
	// Sample returns the latest acceleration on each axis.
	Sample() (x, y, z int, err error)

	// Gesture returns the most recent recognized gesture.
	Gesture() (Gesture, error)

	// SetRange sets the full-scale range in g (2, 4 or 8).
	SetRange(g int) error
}

// Compass is the 3-axis magnetometer. Samples are in nanotesla.
type Compass interface {
	// Sample returns the latest magnetic field reading on each axis.
	Sample() (x, y, z int, err error)

	// Calibrated reports whether a calibration is in effect.
	Calibrated() (bool, error)

	// ClearCalibration discards the stored calibration.
	ClearCalibration() error

	// Calibrate runs the calibration routine. Blocks until complete.
	Calibrate() error

	// FieldStrength returns the magnitude of the field in nanotesla.
	FieldStrength() (int, error)

	// Heading returns the compass heading in degrees (0-359).
	Heading() (int, error)
}
