// Package sim provides a complete in-memory device set for the board
// façade. It exists so the HAL can run on a development host and so
// tests can script edges, samples and failures without hardware. It is
// a test double for the device layer, not a device driver.
package sim

import (
	"bytes"

	"ubithal/flashlog"
	"ubithal/hal"
)

// logCapacity is the simulated flash budget of the data log.
const logCapacity = 8192

// Board aggregates one simulated device of every kind, pre-wired into a
// hal.Devices set. The fields are exported so tests can poke state
// directly.
type Board struct {
	Pins    [hal.NumPins]*Pin
	Buttons [hal.NumButtons]*Button
	Display *Display
	Accel   *Accel
	Compass *Compass
	I2C     *I2C
	SPI     *SPI
	Serial  *Serial
	Log     *flashlog.Store
	Power   *Power
	System  *System
	Random  *Random
	Mixer   *Mixer

	// SerialOut collects everything mirrored to the simulated serial
	// line (data log mirroring).
	SerialOut bytes.Buffer
}

// NewBoard returns a fully populated simulated board.
func NewBoard() *Board {
	b := &Board{
		Display: NewDisplay(),
		Accel:   &Accel{rangeG: 2},
		Compass: &Compass{},
		I2C:     NewI2C(),
		SPI:     &SPI{},
		Serial:  &Serial{},
		Power:   &Power{},
		System:  &System{temperature: 21},
		Random:  NewRandom(1),
		Mixer:   &Mixer{},
	}
	for i := range b.Pins {
		b.Pins[i] = &Pin{}
	}
	for i := range b.Buttons {
		b.Buttons[i] = &Button{}
	}
	b.Log = flashlog.New(logCapacity, &b.SerialOut)
	return b
}

// Devices returns the board wired as a hal.Devices set.
func (b *Board) Devices() hal.Devices {
	pins := make([]hal.Pin, len(b.Pins))
	for i, p := range b.Pins {
		pins[i] = p
	}
	buttons := make([]hal.Button, len(b.Buttons))
	for i, btn := range b.Buttons {
		buttons[i] = btn
	}
	return hal.Devices{
		Pins:    pins,
		Buttons: buttons,
		Display: b.Display,
		Accel:   b.Accel,
		Compass: b.Compass,
		I2C:     b.I2C,
		SPI:     b.SPI,
		Serial:  b.Serial,
		Log:     b.Log,
		Power:   b.Power,
		System:  b.System,
		Random:  b.Random,
		Mixer:   b.Mixer,
	}
}

// Mixer records writes to the virtual audio output channel.
type Mixer struct {
	Value    int
	PeriodUs int
	Writes   int
}

func (m *Mixer) AnalogWrite(value int) error {
	m.Value = value
	m.Writes++
	return nil
}

func (m *Mixer) SetAnalogPeriodUs(period int) error {
	m.PeriodUs = period
	return nil
}

// Random is a deterministic xorshift32 source, so tests and host runs
// are reproducible.
type Random struct {
	state uint32
}

// NewRandom returns a source seeded with the given non-zero seed.
func NewRandom(seed uint32) *Random {
	if seed == 0 {
		seed = 1
	}
	return &Random{state: seed}
}

func (r *Random) Uint16() uint16 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return uint16(x)
}
