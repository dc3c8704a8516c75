// Package serial provides the host-side serial channel: a real device
// node standing in for the board's re-routable UART. It doubles as the
// sink for data log mirroring.
package serial

import (
	"io"

	"ubithal/hal"
)

// Port represents an open serial port. Kept as an interface so tests
// can substitute an in-memory implementation.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate (USB CDC devices ignore this).
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the board's USB
// serial defaults.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}

// Channel adapts a host serial device to the board's SerialPort
// interface. Redirect is accepted but has no effect: which pins the
// host's USB bridge uses is fixed by the hardware, so the device node
// is the only routing there is.
type Channel struct {
	cfg  *Config
	port Port

	open func(cfg *Config) (Port, error)
}

// NewChannel returns a channel over the given device node. The port is
// opened lazily on the first baud change so a board can be constructed
// before the device is plugged in.
func NewChannel(device string) *Channel {
	return &Channel{cfg: DefaultConfig(device), open: Open}
}

// Port returns the open port, or nil before the first SetBaud.
func (c *Channel) Port() Port {
	return c.port
}

// Redirect implements hal.SerialPort.
func (c *Channel) Redirect(tx, rx hal.Pin) error {
	return nil
}

// baudSetter is an optional Port capability: retune the line rate in
// place instead of closing and reopening.
type baudSetter interface {
	SetBaud(baud int) error
}

// SetBaud implements hal.SerialPort. Ports that can retune themselves
// are retuned in place; anything else is closed and reopened at the
// new rate.
func (c *Channel) SetBaud(baud int) error {
	c.cfg.Baud = baud
	if c.port != nil {
		if bs, ok := c.port.(baudSetter); ok {
			return bs.SetBaud(baud)
		}
		if err := c.port.Close(); err != nil {
			return err
		}
		c.port = nil
	}
	port, err := c.open(c.cfg)
	if err != nil {
		return err
	}
	c.port = port
	return nil
}

// Close closes the underlying port if open.
func (c *Channel) Close() error {
	if c.port == nil {
		return nil
	}
	err := c.port.Close()
	c.port = nil
	return err
}
