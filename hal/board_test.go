package hal_test

import (
	"errors"
	"testing"

	"ubithal/hal"
	"ubithal/sim"
)

// newSparseBoard builds a board with only the required devices, for
// exercising the missing-device paths.
func newSparseBoard(t *testing.T) *hal.Board {
	t.Helper()
	s := sim.NewBoard()
	dev := s.Devices()
	dev.Display = nil
	dev.Accel = nil
	dev.Compass = nil
	dev.I2C = nil
	dev.SPI = nil
	dev.Serial = nil
	dev.Log = nil
	dev.Power = nil
	dev.Mixer = nil
	b, err := hal.New(dev)
	if err != nil {
		t.Fatalf("hal.New: %v", err)
	}
	return b
}

func TestNewRequiresCoreDevices(t *testing.T) {
	s := sim.NewBoard()

	dev := s.Devices()
	dev.Pins = nil
	if _, err := hal.New(dev); err == nil {
		t.Error("expected error without pins")
	}

	dev = s.Devices()
	dev.Buttons = nil
	if _, err := hal.New(dev); err == nil {
		t.Error("expected error without buttons")
	}

	dev = s.Devices()
	dev.System = nil
	if _, err := hal.New(dev); err == nil {
		t.Error("expected error without system driver")
	}

	dev = s.Devices()
	dev.Random = nil
	if _, err := hal.New(dev); err == nil {
		t.Error("expected error without random source")
	}
}

func TestMissingDevicesNotSupported(t *testing.T) {
	b := newSparseBoard(t)

	if err := b.DisplayEnable(true); !errors.Is(err, hal.ErrNotSupported) {
		t.Errorf("display err = %v, want ErrNotSupported", err)
	}
	if err := b.I2CInit(hal.PinP19, hal.PinP20, 100000); !errors.Is(err, hal.ErrNotSupported) {
		t.Errorf("i2c err = %v, want ErrNotSupported", err)
	}
	if err := b.LogBeginRow(); !errors.Is(err, hal.ErrNotSupported) {
		t.Errorf("log err = %v, want ErrNotSupported", err)
	}
	if _, err := b.DeepSleep(true, 0); !errors.Is(err, hal.ErrNotSupported) {
		t.Errorf("power err = %v, want ErrNotSupported", err)
	}
}

func TestRandomWordCombinesTwoDraws(t *testing.T) {
	b, _ := newBoard(t)

	// An identically seeded reference source predicts the two draws.
	ref := sim.NewRandom(1)
	hi, lo := uint32(ref.Uint16()), uint32(ref.Uint16())

	if got, want := b.RandomWord(), hi<<16|lo; got != want {
		t.Errorf("RandomWord = %#x, want %#x", got, want)
	}
}

func TestSystemForwarding(t *testing.T) {
	b, s := newBoard(t)

	s.System.SetTemperature(31)
	c, err := b.Temperature()
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if c != 31 {
		t.Errorf("temperature = %d, want 31", c)
	}

	b.Idle()
	if s.System.Idles != 1 {
		t.Error("idle not forwarded")
	}

	b.Panic(42)
	if !s.System.Panicked || s.System.PanicCode != 42 {
		t.Errorf("panic code = %d (panicked=%v), want 42", s.System.PanicCode, s.System.Panicked)
	}

	b.Reset()
	if s.System.Resets != 1 {
		t.Error("reset not forwarded")
	}
}

func TestResultOf(t *testing.T) {
	cases := []struct {
		err  error
		want hal.Result
	}{
		{nil, hal.ResultOK},
		{hal.ErrNoResources, hal.ResultNoResources},
		{errors.New("i2c timeout"), hal.ResultError},
		{hal.ErrNotSupported, hal.ResultError},
	}
	for _, tc := range cases {
		if got := hal.ResultOf(tc.err); got != tc.want {
			t.Errorf("ResultOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
