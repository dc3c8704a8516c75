package hal_test

import (
	"testing"

	"ubithal/hal"
)

func TestAccelerometerSample(t *testing.T) {
	b, s := newBoard(t)

	s.Accel.SetSample(-120, 40, -980)
	x, y, z, err := b.AccelerometerSample()
	if err != nil {
		t.Fatalf("AccelerometerSample: %v", err)
	}
	if x != -120 || y != 40 || z != -980 {
		t.Errorf("sample = (%d,%d,%d), want (-120,40,-980)", x, y, z)
	}
}

func TestAccelerometerGestureQueue(t *testing.T) {
	b, s := newBoard(t)

	s.Accel.PushGesture(hal.GestureShake)
	s.Accel.PushGesture(hal.GestureFaceUp)

	for i, want := range []hal.Gesture{hal.GestureShake, hal.GestureFaceUp, hal.GestureNone} {
		g, err := b.AccelerometerGesture()
		if err != nil {
			t.Fatalf("AccelerometerGesture: %v", err)
		}
		if g != want {
			t.Errorf("gesture %d = %v, want %v", i, g, want)
		}
	}
}

func TestAccelerometerSetRange(t *testing.T) {
	b, s := newBoard(t)

	if err := b.AccelerometerSetRange(8); err != nil {
		t.Fatalf("AccelerometerSetRange: %v", err)
	}
	if s.Accel.Range() != 8 {
		t.Errorf("range = %d, want 8", s.Accel.Range())
	}
	if err := b.AccelerometerSetRange(5); err == nil {
		t.Error("expected error for unsupported range")
	}
}

func TestCompassCalibrationCycle(t *testing.T) {
	b, s := newBoard(t)

	ok, err := b.CompassCalibrated()
	if err != nil {
		t.Fatalf("CompassCalibrated: %v", err)
	}
	if ok {
		t.Fatal("fresh compass reports calibrated")
	}

	if err := b.CompassCalibrate(); err != nil {
		t.Fatalf("CompassCalibrate: %v", err)
	}
	if ok, _ = b.CompassCalibrated(); !ok {
		t.Error("compass not calibrated after Calibrate")
	}
	if s.Compass.Calibrations != 1 {
		t.Errorf("calibration runs = %d, want 1", s.Compass.Calibrations)
	}

	if err := b.CompassClearCalibration(); err != nil {
		t.Fatalf("CompassClearCalibration: %v", err)
	}
	if ok, _ = b.CompassCalibrated(); ok {
		t.Error("calibration survives clear")
	}
}

func TestCompassReadings(t *testing.T) {
	b, s := newBoard(t)

	s.Compass.SetSample(100, -200, 300)
	s.Compass.SetFieldStrength(374)
	s.Compass.SetHeading(275)

	x, y, z, err := b.CompassSample()
	if err != nil {
		t.Fatalf("CompassSample: %v", err)
	}
	if x != 100 || y != -200 || z != 300 {
		t.Errorf("sample = (%d,%d,%d)", x, y, z)
	}
	if f, _ := b.CompassFieldStrength(); f != 374 {
		t.Errorf("field strength = %d, want 374", f)
	}
	if h, _ := b.CompassHeading(); h != 275 {
		t.Errorf("heading = %d, want 275", h)
	}
}

func TestSensorsMissing(t *testing.T) {
	s := newSparseBoard(t)
	if _, err := s.AccelerometerGesture(); err == nil {
		t.Error("expected error without accelerometer")
	}
	if _, err := s.CompassHeading(); err == nil {
		t.Error("expected error without compass")
	}
}
