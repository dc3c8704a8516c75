package sim

import (
	"fmt"

	"ubithal/hal"
)

// Pin is a simulated physical pin. Zero value is a low digital input
// with no pull, not in analog mode, not touched.
type Pin struct {
	digital        int
	analog         int
	analogMode     bool
	analogPeriodUs int

	pull      hal.PullMode
	pullSets  int
	touchMode hal.TouchMode

	touched      bool
	touchEdges   int
	calibrations int

	wake  bool
	strip []byte

	// Fail, if set, is returned by every fallible operation. Lets tests
	// exercise error propagation.
	Fail error
}

// SetDigital drives the simulated input level.
func (p *Pin) SetDigital(v int) { p.digital = v }

// SetAnalog sets the value the next analog read returns.
func (p *Pin) SetAnalog(v int) { p.analog = v }

// Touch injects n touch edges and leaves the pin in the touched state.
func (p *Pin) Touch(n int) {
	p.touchEdges += n
	p.touched = true
}

// Release clears the instantaneous touched state.
func (p *Pin) Release() { p.touched = false }

// Wake reports whether the pin is armed as a wake source.
func (p *Pin) Wake() bool { return p.wake }

// Pull returns the configured pull mode and how often it was set.
func (p *Pin) Pull() (hal.PullMode, int) { return p.pull, p.pullSets }

// Strip returns the last WS2812 buffer written to the pin.
func (p *Pin) Strip() []byte { return p.strip }

// Calibrations returns the number of touch calibration runs.
func (p *Pin) Calibrations() int { return p.calibrations }

// AnalogMode reports whether the pin has been placed in analog mode.
func (p *Pin) AnalogMode() bool { return p.analogMode }

func (p *Pin) DigitalRead() (int, error) {
	if p.Fail != nil {
		return 0, p.Fail
	}
	return p.digital, nil
}

func (p *Pin) DigitalWrite(value int) error {
	if p.Fail != nil {
		return p.Fail
	}
	p.analogMode = false
	p.digital = value
	return nil
}

func (p *Pin) AnalogRead() (int, error) {
	if p.Fail != nil {
		return 0, p.Fail
	}
	return p.analog, nil
}

func (p *Pin) AnalogWrite(value int) error {
	if p.Fail != nil {
		return p.Fail
	}
	if !p.analogMode {
		p.analogMode = true
		p.analogPeriodUs = 20000 // device default PWM period
	}
	p.analog = value
	return nil
}

func (p *Pin) AnalogPeriodUs() (int, error) {
	if p.Fail != nil {
		return 0, p.Fail
	}
	if !p.analogMode {
		return 0, fmt.Errorf("sim: pin not in analog mode: %w", hal.ErrNotSupported)
	}
	return p.analogPeriodUs, nil
}

func (p *Pin) SetAnalogPeriodUs(period int) error {
	if p.Fail != nil {
		return p.Fail
	}
	if !p.analogMode {
		return fmt.Errorf("sim: pin not in analog mode: %w", hal.ErrNotSupported)
	}
	p.analogPeriodUs = period
	return nil
}

func (p *Pin) SetPull(mode hal.PullMode) error {
	if p.Fail != nil {
		return p.Fail
	}
	p.pull = mode
	p.pullSets++
	return nil
}

func (p *Pin) SetTouchMode(mode hal.TouchMode) error {
	if p.Fail != nil {
		return p.Fail
	}
	p.touchMode = mode
	return nil
}

func (p *Pin) TouchCalibrate() error {
	if p.Fail != nil {
		return p.Fail
	}
	p.calibrations++
	return nil
}

func (p *Pin) IsTouched() (bool, error) {
	if p.Fail != nil {
		return false, p.Fail
	}
	return p.touched, nil
}

func (p *Pin) WasTouched() (int, error) {
	if p.Fail != nil {
		return 0, p.Fail
	}
	n := p.touchEdges
	p.touchEdges = 0
	return n, nil
}

func (p *Pin) WakeOnActive(on bool) error {
	if p.Fail != nil {
		return p.Fail
	}
	p.wake = on
	return nil
}

func (p *Pin) WriteStrip(buf []byte) error {
	if p.Fail != nil {
		return p.Fail
	}
	p.strip = append(p.strip[:0], buf...)
	return nil
}
