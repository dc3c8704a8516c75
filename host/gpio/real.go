//go:build linux

package gpio

import (
	"fmt"
	"sync/atomic"

	"github.com/warthog618/go-gpiocdev"

	"ubithal/hal"
)

// Pin drives one GPIO line as a hal.Pin. Analog and touch operations
// are not available on a bare character-device line and report
// hal.ErrNotSupported.
type Pin struct {
	chip  *gpiocdev.Chip
	line  *gpiocdev.Line
	cfg   Config
	out   bool
	edges atomic.Int64
}

// NewPin opens the configured line as an input with edge events
// enabled, so WasTouched-style edge polling works out of the box. The
// line flips to output mode on the first DigitalWrite.
func NewPin(cfg Config) (*Pin, error) {
	chip, err := gpiocdev.NewChip(cfg.chip())
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", cfg.chip(), err)
	}

	p := &Pin{chip: chip, cfg: cfg}
	line, err := chip.RequestLine(cfg.Offset, p.inputOpts()...)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request line %d: %w", cfg.Offset, err)
	}
	p.line = line
	return p, nil
}

func (p *Pin) inputOpts() []gpiocdev.LineReqOption {
	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(p.onEvent),
	}
	if p.cfg.ActiveLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}
	return opts
}

func (p *Pin) onEvent(evt gpiocdev.LineEvent) {
	if evt.Type == gpiocdev.LineEventRisingEdge {
		p.edges.Add(1)
	}
}

func (p *Pin) DigitalRead() (int, error) {
	if p.out {
		// Switch back to input before sampling.
		if err := p.line.Reconfigure(gpiocdev.AsInput); err != nil {
			return 0, fmt.Errorf("reconfigure line %d as input: %w", p.cfg.Offset, err)
		}
		p.out = false
	}
	v, err := p.line.Value()
	if err != nil {
		return 0, fmt.Errorf("read line %d: %w", p.cfg.Offset, err)
	}
	return v, nil
}

func (p *Pin) DigitalWrite(value int) error {
	if !p.out {
		if err := p.line.Reconfigure(gpiocdev.AsOutput(value)); err != nil {
			return fmt.Errorf("reconfigure line %d as output: %w", p.cfg.Offset, err)
		}
		p.out = true
		return nil
	}
	if err := p.line.SetValue(value); err != nil {
		return fmt.Errorf("write line %d: %w", p.cfg.Offset, err)
	}
	return nil
}

func (p *Pin) AnalogRead() (int, error) {
	return 0, fmt.Errorf("line %d: analog read: %w", p.cfg.Offset, hal.ErrNotSupported)
}

func (p *Pin) AnalogWrite(value int) error {
	return fmt.Errorf("line %d: analog write: %w", p.cfg.Offset, hal.ErrNotSupported)
}

func (p *Pin) AnalogPeriodUs() (int, error) {
	return 0, fmt.Errorf("line %d: analog period: %w", p.cfg.Offset, hal.ErrNotSupported)
}

func (p *Pin) SetAnalogPeriodUs(period int) error {
	return fmt.Errorf("line %d: analog period: %w", p.cfg.Offset, hal.ErrNotSupported)
}

func (p *Pin) SetPull(mode hal.PullMode) error {
	var opt gpiocdev.LineConfigOption
	switch mode {
	case hal.PullUp:
		opt = gpiocdev.WithPullUp
	case hal.PullDown:
		opt = gpiocdev.WithPullDown
	case hal.PullNone:
		opt = gpiocdev.WithBiasDisabled
	default:
		return fmt.Errorf("line %d: unknown pull mode %d", p.cfg.Offset, mode)
	}
	if err := p.line.Reconfigure(opt); err != nil {
		return fmt.Errorf("set pull on line %d: %w", p.cfg.Offset, err)
	}
	return nil
}

func (p *Pin) SetTouchMode(mode hal.TouchMode) error {
	return fmt.Errorf("line %d: touch mode: %w", p.cfg.Offset, hal.ErrNotSupported)
}

func (p *Pin) TouchCalibrate() error {
	return fmt.Errorf("line %d: touch calibrate: %w", p.cfg.Offset, hal.ErrNotSupported)
}

// IsTouched reports the line level, treating an active line as a touch.
// Wire the pad through a pull so the idle level is inactive.
func (p *Pin) IsTouched() (bool, error) {
	v, err := p.DigitalRead()
	return v != 0, err
}

// WasTouched drains the edge count accumulated by the kernel event
// stream since the previous call.
func (p *Pin) WasTouched() (int, error) {
	return int(p.edges.Swap(0)), nil
}

func (p *Pin) WakeOnActive(on bool) error {
	return fmt.Errorf("line %d: wake source: %w", p.cfg.Offset, hal.ErrNotSupported)
}

// Close releases the line and chip handles.
func (p *Pin) Close() error {
	var first error
	if err := p.line.Close(); err != nil {
		first = fmt.Errorf("close line %d: %w", p.cfg.Offset, err)
	}
	if err := p.chip.Close(); err != nil && first == nil {
		first = fmt.Errorf("close chip %s: %w", p.cfg.chip(), err)
	}
	return first
}

// Button reads one GPIO line as a hal.Button, counting press edges from
// the kernel event stream.
type Button struct {
	chip    *gpiocdev.Chip
	line    *gpiocdev.Line
	cfg     Config
	presses atomic.Int64
}

// NewButton opens the configured line as a pulled-up input and watches
// for press edges. A button wired to ground should set ActiveLow.
func NewButton(cfg Config) (*Button, error) {
	chip, err := gpiocdev.NewChip(cfg.chip())
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", cfg.chip(), err)
	}

	b := &Button{chip: chip, cfg: cfg}
	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(b.onEvent),
	}
	if cfg.ActiveLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}
	line, err := chip.RequestLine(cfg.Offset, opts...)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request line %d: %w", cfg.Offset, err)
	}
	b.line = line
	return b, nil
}

func (b *Button) onEvent(evt gpiocdev.LineEvent) {
	if evt.Type == gpiocdev.LineEventRisingEdge {
		b.presses.Add(1)
	}
}

func (b *Button) IsPressed() (bool, error) {
	v, err := b.line.Value()
	if err != nil {
		return false, fmt.Errorf("read line %d: %w", b.cfg.Offset, err)
	}
	return v != 0, nil
}

func (b *Button) WasPressed() (bool, error) {
	return b.presses.Swap(0) > 0, nil
}

func (b *Button) WakeOnActive(on bool) error {
	return fmt.Errorf("line %d: wake source: %w", b.cfg.Offset, hal.ErrNotSupported)
}

// Close releases the line and chip handles.
func (b *Button) Close() error {
	var first error
	if err := b.line.Close(); err != nil {
		first = fmt.Errorf("close line %d: %w", b.cfg.Offset, err)
	}
	if err := b.chip.Close(); err != nil && first == nil {
		first = fmt.Errorf("close chip %s: %w", b.cfg.chip(), err)
	}
	return first
}
