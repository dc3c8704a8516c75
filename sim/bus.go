package sim

import (
	"fmt"

	"ubithal/hal"
)

// Device is a simulated I2C peripheral attached to the bus.
type Device interface {
	// Write receives a master write.
	Write(p []byte) error

	// Read fills p for a master read.
	Read(p []byte) error
}

// I2C is the simulated I2C controller. Peripherals are attached by
// 7-bit address; transfers to unattached addresses fail like a missing
// ack would.
type I2C struct {
	sda, scl hal.Pin
	freq     int
	devices  map[uint8]Device

	// Redirects counts bus re-routes.
	Redirects int

	// LastReadRepeated and LastWriteRepeated record the repeated-start
	// flag of the most recent transfer in each direction.
	LastReadRepeated  bool
	LastWriteRepeated bool
}

// NewI2C returns a bus with no attached peripherals.
func NewI2C() *I2C {
	return &I2C{devices: make(map[uint8]Device)}
}

// Attach connects a peripheral at the given 7-bit address.
func (b *I2C) Attach(addr uint8, dev Device) {
	b.devices[addr] = dev
}

// Frequency returns the configured bus clock.
func (b *I2C) Frequency() int { return b.freq }

// Routed reports whether the bus is currently routed to the given pins.
func (b *I2C) Routed(sda, scl hal.Pin) bool {
	return b.sda == sda && b.scl == scl
}

func (b *I2C) Redirect(sda, scl hal.Pin) error {
	b.sda, b.scl = sda, scl
	b.Redirects++
	return nil
}

func (b *I2C) SetFrequency(hz int) error {
	b.freq = hz
	return nil
}

func (b *I2C) device(addr uint8) (Device, error) {
	dev, ok := b.devices[addr]
	if !ok {
		return nil, fmt.Errorf("sim: i2c address %#02x: no ack", addr)
	}
	return dev, nil
}

func (b *I2C) Read(addr uint8, buf []byte, repeated bool) error {
	b.LastReadRepeated = repeated
	dev, err := b.device(addr)
	if err != nil {
		return err
	}
	return dev.Read(buf)
}

func (b *I2C) Write(addr uint8, buf []byte, repeated bool) error {
	b.LastWriteRepeated = repeated
	dev, err := b.device(addr)
	if err != nil {
		return err
	}
	return dev.Write(buf)
}

// RegisterFile is a Device backed by a 256-entry register map with a
// pointer register and auto-increment, the shape most I2C sensors
// present. The high bit of the pointer byte (the usual auto-increment
// flag) is masked off.
type RegisterFile struct {
	Regs [256]byte
	ptr  uint8
}

func (r *RegisterFile) Write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	r.ptr = p[0] &^ 0x80
	for _, b := range p[1:] {
		r.Regs[r.ptr] = b
		r.ptr++
	}
	return nil
}

func (r *RegisterFile) Read(p []byte) error {
	for i := range p {
		p[i] = r.Regs[r.ptr]
		r.ptr++
	}
	return nil
}

// SPI is the simulated SPI controller. Written frames are recorded;
// reads are served from a scripted response queue, zero-filled once the
// queue drains.
type SPI struct {
	mosi, miso, sclk hal.Pin
	freq             int
	mode             int
	bits             int

	Written   [][]byte
	responses [][]byte

	// Redirects counts bus re-routes.
	Redirects int
}

// Respond queues a response frame for a future read transfer.
func (b *SPI) Respond(p []byte) {
	b.responses = append(b.responses, append([]byte(nil), p...))
}

// Mode returns the configured mode and word size.
func (b *SPI) Mode() (mode, bits int) { return b.mode, b.bits }

// Frequency returns the configured clock rate.
func (b *SPI) Frequency() int { return b.freq }

// Routed reports whether the bus is currently routed to the given pins.
func (b *SPI) Routed(mosi, miso, sclk hal.Pin) bool {
	return b.mosi == mosi && b.miso == miso && b.sclk == sclk
}

func (b *SPI) Redirect(mosi, miso, sclk hal.Pin) error {
	b.mosi, b.miso, b.sclk = mosi, miso, sclk
	b.Redirects++
	return nil
}

func (b *SPI) SetFrequency(hz int) error {
	b.freq = hz
	return nil
}

func (b *SPI) SetMode(mode, bits int) error {
	if mode < 0 || mode > 3 {
		return fmt.Errorf("sim: spi mode %d out of range", mode)
	}
	b.mode, b.bits = mode, bits
	return nil
}

func (b *SPI) Transfer(src, dst []byte) error {
	b.Written = append(b.Written, append([]byte(nil), src...))
	if dst == nil {
		return nil
	}
	for i := range dst {
		dst[i] = 0
	}
	if len(b.responses) > 0 {
		copy(dst, b.responses[0])
		b.responses = b.responses[1:]
	}
	return nil
}

// Serial is the simulated UART-like channel.
type Serial struct {
	tx, rx hal.Pin
	baud   int

	// Redirects counts channel re-routes.
	Redirects int
}

// Baud returns the configured line rate.
func (s *Serial) Baud() int { return s.baud }

// Routed reports whether the channel is currently routed to the given
// pins.
func (s *Serial) Routed(tx, rx hal.Pin) bool {
	return s.tx == tx && s.rx == rx
}

func (s *Serial) Redirect(tx, rx hal.Pin) error {
	s.tx, s.rx = tx, rx
	s.Redirects++
	return nil
}

func (s *Serial) SetBaud(baud int) error {
	s.baud = baud
	return nil
}
