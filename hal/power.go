package hal

import "time"

// PowerOff powers the board down immediately.
func (b *Board) PowerOff() error {
	if b.dev.Power == nil {
		return missingErr("power control")
	}
	return b.dev.Power.Off()
}

// DeepSleep enters deep sleep. With wakeOnTimer the wake duration is
// armed and the return value reports whether the sleep completed or was
// interrupted by a wake event; without it the board sleeps until a wake
// source fires, which always counts as interrupted.
func (b *Board) DeepSleep(wakeOnTimer bool, wake time.Duration) (bool, error) {
	if b.dev.Power == nil {
		return false, missingErr("power control")
	}
	if wakeOnTimer {
		return b.dev.Power.DeepSleep(wake)
	}
	if err := b.dev.Power.DeepSleepUntilEvent(); err != nil {
		return false, err
	}
	return true, nil
}

// WakeOnPin arms or disarms a pin as a low-power wake source.
func (b *Board) WakeOnPin(pin int, on bool) error {
	p, err := b.pin(pin)
	if err != nil {
		return err
	}
	return p.WakeOnActive(on)
}

// WakeOnButton arms or disarms a button as a low-power wake source.
func (b *Board) WakeOnButton(button int, on bool) error {
	btn, err := b.button(button)
	if err != nil {
		return err
	}
	return btn.WakeOnActive(on)
}

// ClearWakeSources disarms every configured pin and button wake source.
// Keeps going past individual failures and returns the first error.
func (b *Board) ClearWakeSources() error {
	var firstErr error
	for _, p := range b.dev.Pins {
		if p == nil {
			continue
		}
		if err := p.WakeOnActive(false); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, btn := range b.dev.Buttons {
		if btn == nil {
			continue
		}
		if err := btn.WakeOnActive(false); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
