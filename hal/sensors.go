package hal

// AccelerometerSample returns the latest 3-axis acceleration in milli-g.
func (b *Board) AccelerometerSample() (x, y, z int, err error) {
	if b.dev.Accel == nil {
		return 0, 0, 0, missingErr("accelerometer")
	}
	return b.dev.Accel.Sample()
}

// AccelerometerGesture returns the most recent recognized gesture.
func (b *Board) AccelerometerGesture() (Gesture, error) {
	if b.dev.Accel == nil {
		return GestureNone, missingErr("accelerometer")
	}
	return b.dev.Accel.Gesture()
}

// AccelerometerSetRange sets the accelerometer full-scale range in g.
func (b *Board) AccelerometerSetRange(g int) error {
	if b.dev.Accel == nil {
		return missingErr("accelerometer")
	}
	return b.dev.Accel.SetRange(g)
}

// CompassSample returns the latest 3-axis magnetic field in nanotesla.
func (b *Board) CompassSample() (x, y, z int, err error) {
	if b.dev.Compass == nil {
		return 0, 0, 0, missingErr("compass")
	}
	return b.dev.Compass.Sample()
}

// CompassCalibrated reports whether a compass calibration is in effect.
func (b *Board) CompassCalibrated() (bool, error) {
	if b.dev.Compass == nil {
		return false, missingErr("compass")
	}
	return b.dev.Compass.Calibrated()
}

// CompassClearCalibration discards the stored compass calibration.
func (b *Board) CompassClearCalibration() error {
	if b.dev.Compass == nil {
		return missingErr("compass")
	}
	return b.dev.Compass.ClearCalibration()
}

// CompassCalibrate runs the compass calibration routine.
func (b *Board) CompassCalibrate() error {
	if b.dev.Compass == nil {
		return missingErr("compass")
	}
	return b.dev.Compass.Calibrate()
}

// CompassFieldStrength returns the field magnitude in nanotesla.
func (b *Board) CompassFieldStrength() (int, error) {
	if b.dev.Compass == nil {
		return 0, missingErr("compass")
	}
	return b.dev.Compass.FieldStrength()
}

// CompassHeading returns the heading in degrees.
func (b *Board) CompassHeading() (int, error) {
	if b.dev.Compass == nil {
		return 0, missingErr("compass")
	}
	return b.dev.Compass.Heading()
}
