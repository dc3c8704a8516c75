package serial

import (
	"bytes"
	"testing"

	"ubithal/hal"
)

var _ hal.SerialPort = (*Channel)(nil)

type fakePort struct {
	bytes.Buffer
	closed bool
	baud   int
}

func (p *fakePort) Close() error { p.closed = true; return nil }
func (p *fakePort) Flush() error { return nil }

func TestChannelReopensOnBaudChange(t *testing.T) {
	var opened []*fakePort
	c := NewChannel("/dev/null")
	c.open = func(cfg *Config) (Port, error) {
		p := &fakePort{baud: cfg.Baud}
		opened = append(opened, p)
		return p, nil
	}

	if c.Port() != nil {
		t.Fatal("port open before first SetBaud")
	}
	if err := c.SetBaud(9600); err != nil {
		t.Fatal(err)
	}
	if len(opened) != 1 || opened[0].baud != 9600 {
		t.Fatalf("opened = %v", opened)
	}

	if err := c.SetBaud(115200); err != nil {
		t.Fatal(err)
	}
	if !opened[0].closed {
		t.Error("previous port left open")
	}
	if len(opened) != 2 || opened[1].baud != 115200 {
		t.Fatalf("reopen at new baud failed: %v", opened)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if !opened[1].closed {
		t.Error("Close left the port open")
	}
}

type retunablePort struct {
	fakePort
	retunes int
}

func (p *retunablePort) SetBaud(baud int) error {
	p.baud = baud
	p.retunes++
	return nil
}

func TestChannelRetunesInPlace(t *testing.T) {
	var _ baudSetter = (*NativePort)(nil)

	opens := 0
	var port *retunablePort
	c := NewChannel("/dev/null")
	c.open = func(cfg *Config) (Port, error) {
		opens++
		port = &retunablePort{fakePort: fakePort{baud: cfg.Baud}}
		return port, nil
	}

	if err := c.SetBaud(9600); err != nil {
		t.Fatal(err)
	}
	if err := c.SetBaud(115200); err != nil {
		t.Fatal(err)
	}
	if opens != 1 {
		t.Errorf("opened %d times, want 1", opens)
	}
	if port.closed {
		t.Error("retunable port was closed instead of retuned")
	}
	if port.retunes != 1 || port.baud != 115200 {
		t.Errorf("retunes = %d, baud = %d", port.retunes, port.baud)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	if cfg.Device != "/dev/ttyACM0" || cfg.Baud != 115200 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
