package imu

import "ubithal/hal"

// Posture thresholds in milli-g. A tilt fires once an axis carries
// most of the gravity vector; the high-g codes fire on total magnitude.
const (
	tiltThreshold     = 600
	freefallThreshold = 400
	threshold2G       = 2000
	threshold3G       = 3000
	threshold6G       = 6000
	threshold8G       = 8000
)

// classify maps one acceleration sample in milli-g to a posture
// gesture. It is stateless; shake needs history and lives in
// shakeDetector.
func classify(x, y, z int) hal.Gesture {
	m := magnitude(x, y, z)
	switch {
	case m >= threshold8G:
		return hal.Gesture8G
	case m >= threshold6G:
		return hal.Gesture6G
	case m >= threshold3G:
		return hal.Gesture3G
	case m >= threshold2G:
		return hal.Gesture2G
	case m < freefallThreshold:
		return hal.GestureFreefall
	}

	switch {
	case x <= -tiltThreshold:
		return hal.GestureTiltLeft
	case x >= tiltThreshold:
		return hal.GestureTiltRight
	case y <= -tiltThreshold:
		return hal.GestureTiltDown
	case y >= tiltThreshold:
		return hal.GestureTiltUp
	case z <= -tiltThreshold:
		return hal.GestureFaceUp
	case z >= tiltThreshold:
		return hal.GestureFaceDown
	}
	return hal.GestureNone
}

func magnitude(x, y, z int) int {
	return fieldStrength(x, y, z)
}

// shakeDetector counts sign reversals of the x axis across recent
// samples. Enough reversals inside the window is a shake.
type shakeDetector struct {
	lastSign  int
	reversals int
	cooldown  int
}

const (
	shakeImpulse   = 400
	shakeReversals = 3
	shakeWindow    = 10
)

// feed consumes one x-axis sample in milli-g and reports whether a
// shake completed on this sample.
func (s *shakeDetector) feed(x int) bool {
	if s.cooldown > 0 {
		s.cooldown--
		if s.cooldown == 0 {
			s.reversals = 0
			s.lastSign = 0
		}
	}

	sign := 0
	switch {
	case x >= shakeImpulse:
		sign = 1
	case x <= -shakeImpulse:
		sign = -1
	default:
		return false
	}

	if s.lastSign != 0 && sign != s.lastSign {
		s.reversals++
		s.cooldown = shakeWindow
	}
	s.lastSign = sign

	if s.reversals >= shakeReversals {
		s.reversals = 0
		s.lastSign = 0
		s.cooldown = 0
		return true
	}
	return false
}
