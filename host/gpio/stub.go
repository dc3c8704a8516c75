//go:build !linux

package gpio

import (
	"errors"

	"ubithal/hal"
)

// ErrUnsupportedPlatform is returned by the constructors on platforms
// without the Linux GPIO character device.
var ErrUnsupportedPlatform = errors.New("gpio: requires linux")

// Pin is unavailable on this platform. Every operation fails, but the
// type still satisfies hal.Pin so callers compile everywhere.
type Pin struct{}

// NewPin fails on non-Linux platforms.
func NewPin(cfg Config) (*Pin, error) {
	return nil, ErrUnsupportedPlatform
}

func (p *Pin) DigitalRead() (int, error) { return 0, ErrUnsupportedPlatform }
func (p *Pin) DigitalWrite(value int) error { return ErrUnsupportedPlatform }
func (p *Pin) AnalogRead() (int, error) { return 0, ErrUnsupportedPlatform }
func (p *Pin) AnalogWrite(value int) error { return ErrUnsupportedPlatform }
func (p *Pin) AnalogPeriodUs() (int, error) { return 0, ErrUnsupportedPlatform }
func (p *Pin) SetAnalogPeriodUs(period int) error { return ErrUnsupportedPlatform }
func (p *Pin) SetPull(mode hal.PullMode) error { return ErrUnsupportedPlatform }
func (p *Pin) SetTouchMode(mode hal.TouchMode) error { return ErrUnsupportedPlatform }
func (p *Pin) TouchCalibrate() error { return ErrUnsupportedPlatform }
func (p *Pin) IsTouched() (bool, error) { return false, ErrUnsupportedPlatform }
func (p *Pin) WasTouched() (int, error) { return 0, ErrUnsupportedPlatform }
func (p *Pin) WakeOnActive(on bool) error { return ErrUnsupportedPlatform }
func (p *Pin) Close() error { return nil }

// Button is unavailable on this platform.
type Button struct{}

// NewButton fails on non-Linux platforms.
func NewButton(cfg Config) (*Button, error) {
	return nil, ErrUnsupportedPlatform
}

func (b *Button) IsPressed() (bool, error) { return false, ErrUnsupportedPlatform }
func (b *Button) WasPressed() (bool, error) { return false, ErrUnsupportedPlatform }
func (b *Button) WakeOnActive(on bool) error { return ErrUnsupportedPlatform }
func (b *Button) Close() error { return nil }
