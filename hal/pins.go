package hal

import "errors"

// DigitalRead returns the logic level of a pin.
func (b *Board) DigitalRead(pin int) (int, error) {
	p, err := b.pin(pin)
	if err != nil {
		return 0, err
	}
	return p.DigitalRead()
}

// DigitalWrite drives a pin to the given logic level.
func (b *Board) DigitalWrite(pin, value int) error {
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	return p.DigitalWrite(value)
}

// AnalogRead samples a pin as a 10-bit value.
func (b *Board) AnalogRead(pin int) (int, error) {
	p, err := b.pin(pin)
	if err != nil {
		return 0, err
	}
	return p.AnalogRead()
}

// AnalogWrite outputs a 10-bit duty value on a pin. Writes to the
// virtual mixer channel are routed to the audio mixer output.
func (b *Board) AnalogWrite(pin, value int) error {
	if pin == PinMixer {
		if b.dev.Mixer == nil {
			return missingErr("mixer output")
		}
		return b.dev.Mixer.AnalogWrite(value)
	}
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	return p.AnalogWrite(value)
}

// SetPull configures a pin's pull resistor and caches the mode so Pull
// can report it back without a device round trip.
func (b *Board) SetPull(pin int, mode PullMode) error {
	if mode > PullNone {
		return indexErr("pull mode", int(mode))
	}
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	if err := p.SetPull(mode); err != nil {
		return err
	}
	b.pullState[pin] = mode
	return nil
}

// Pull returns the last pull mode configured through SetPull.
func (b *Board) Pull(pin int) (PullMode, error) {
	if _, err := b.pin(pin); err != nil {
		return 0, err
	}
	return b.pullState[pin], nil
}

// SetAnalogPeriod sets a pin's PWM period in microseconds. A pin that is
// not yet in analog mode is first placed there by writing a zero duty;
// if that fails the pin cannot do analog output at all.
func (b *Board) SetAnalogPeriod(pin, periodUs int) error {
	if pin == PinMixer {
		if b.dev.Mixer == nil {
			return missingErr("mixer output")
		}
		return b.dev.Mixer.SetAnalogPeriodUs(periodUs)
	}
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	if _, err := p.AnalogPeriodUs(); errors.Is(err, ErrNotSupported) {
		if err := p.AnalogWrite(0); err != nil {
			return err
		}
	}
	return p.SetAnalogPeriodUs(periodUs)
}

// AnalogPeriod returns a pin's PWM period in microseconds, or
// ErrNotSupported if the pin is not in analog mode.
func (b *Board) AnalogPeriod(pin int) (int, error) {
	p, err := b.pin(pin)
	if err != nil {
		return 0, err
	}
	return p.AnalogPeriodUs()
}

// SetTouchMode selects a pin's touch detection method.
func (b *Board) SetTouchMode(pin int, mode TouchMode) error {
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	return p.SetTouchMode(mode)
}

// TouchCalibrate re-runs a pin's capacitive touch calibration.
func (b *Board) TouchCalibrate(pin int) error {
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	return p.TouchCalibrate()
}

// touchSlot maps a pin index to its touch counter slot. Only the three
// edge connector touch pins and the logo pin carry counters; the logo
// pin always lives on the last slot.
func touchSlot(pin int) (int, bool) {
	switch pin {
	case PinP0, PinP1, PinP2:
		return pin, true
	case PinLogo:
		return touchChannels - 1, true
	}
	return 0, false
}

// TouchState reports whether a pin is currently touched. If wasTouched
// or touches is non-nil the pin's touch counter is polled: new edges
// reported by the device layer are folded in, then each requested output
// is taken, clearing only the bits it read. Requesting neither output
// leaves the counter untouched and just reports the live state.
func (b *Board) TouchState(pin int, wasTouched *bool, touches *int) (bool, error) {
	p, err := b.pin(pin)
	if err != nil {
		return false, err
	}
	if wasTouched != nil || touches != nil {
		slot, ok := touchSlot(pin)
		if !ok {
			return false, indexErr("touch channel for pin", pin)
		}
		edges, err := p.WasTouched()
		if err != nil {
			return false, err
		}
		st := &b.touchState[slot]
		st.fold(edges)
		if wasTouched != nil {
			*wasTouched = st.takeTriggered()
		}
		if touches != nil {
			*touches = st.takeCount()
		}
	}
	return p.IsTouched()
}

// WriteWS2812 shifts a raw GRB buffer out on a pin driving a WS2812
// strip. Fails with ErrNotSupported on pins without that capability.
func (b *Board) WriteWS2812(pin int, buf []byte) error {
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	sw, ok := p.(StripWriter)
	if !ok {
		return missingErr("strip output on pin")
	}
	return sw.WriteStrip(buf)
}
