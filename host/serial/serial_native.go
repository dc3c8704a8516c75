package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is a board serial line reached through a host device node.
// It keeps its configuration so the line can be retuned in place when
// the board changes the baud rate.
type NativePort struct {
	cfg  Config
	port *serial.Port
}

// Open opens the device node with the given configuration.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("serial: nil config")
	}
	p := &NativePort{cfg: *cfg}
	if err := p.reopen(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *NativePort) reopen() error {
	if p.port != nil {
		if err := p.port.Close(); err != nil {
			return fmt.Errorf("close %s: %w", p.cfg.Device, err)
		}
		p.port = nil
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        p.cfg.Device,
		Baud:        p.cfg.Baud,
		ReadTimeout: time.Duration(p.cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("open %s at %d baud: %w", p.cfg.Device, p.cfg.Baud, err)
	}
	p.port = port
	return nil
}

// SetBaud reopens the device node at the new rate, keeping the rest of
// the configuration.
func (p *NativePort) SetBaud(baud int) error {
	p.cfg.Baud = baud
	return p.reopen()
}

func (p *NativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *NativePort) Write(b []byte) (int, error) { return p.port.Write(b) }

// Close closes the device node. Safe to call on a port that already
// failed to open.
func (p *NativePort) Close() error {
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	return err
}

// Flush is a no-op: tarm/serial exposes no flush and Write pushes
// everything out.
func (p *NativePort) Flush() error { return nil }
