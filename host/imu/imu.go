// Package imu backs the accelerometer and compass with an LSM303AGR
// combined motion sensor driven over the HAL I2C bus. The driver comes
// from tinygo.org/x/drivers; this package adapts its bus contract and
// unit conventions to the HAL ones.
package imu

import (
	"fmt"
	"math"

	"tinygo.org/x/drivers/lsm303agr"

	"ubithal/hal"
)

// busBridge exposes a hal.I2CBus through the tinygo drivers I2C
// contract. A transaction with both a write and a read half holds the
// bus between them with a repeated start.
type busBridge struct {
	bus hal.I2CBus
}

func (b *busBridge) Tx(addr uint16, w, r []byte) error {
	if len(w) > 0 {
		if err := b.bus.Write(uint8(addr), w, len(r) > 0); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		if err := b.bus.Read(uint8(addr), r, false); err != nil {
			return err
		}
	}
	return nil
}

// Motion owns the sensor and hands out the accelerometer and compass
// views. The two views share the one device, so configure once.
type Motion struct {
	dev *lsm303agr.Device
	cfg lsm303agr.Configuration
}

// New wraps the motion sensor behind the given I2C bus. Call Configure
// before sampling.
func New(bus hal.I2CBus) *Motion {
	return &Motion{dev: lsm303agr.New(&busBridge{bus: bus})}
}

// Configure probes the sensor and applies the default configuration.
func (m *Motion) Configure() error {
	if !m.dev.Connected() {
		return fmt.Errorf("lsm303agr not responding: %w", hal.ErrNotSupported)
	}
	if err := m.dev.Configure(m.cfg); err != nil {
		return fmt.Errorf("configure lsm303agr: %w", err)
	}
	return nil
}

// Accelerometer returns the accelerometer view of the sensor.
func (m *Motion) Accelerometer() *Accel {
	return &Accel{m: m}
}

// Compass returns the magnetometer view of the sensor.
func (m *Motion) Compass() *Mag {
	return &Mag{m: m}
}

// Accel implements hal.Accelerometer on the shared sensor.
type Accel struct {
	m     *Motion
	shake shakeDetector
}

// Sample returns the current acceleration in milli-g. The driver
// reports micro-g.
func (a *Accel) Sample() (x, y, z int, err error) {
	ux, uy, uz, err := a.m.dev.ReadAcceleration()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read acceleration: %w", err)
	}
	return int(ux / 1000), int(uy / 1000), int(uz / 1000), nil
}

// Gesture samples the sensor and classifies the current posture. Shake
// recognition needs a few consecutive calls to observe reversals.
func (a *Accel) Gesture() (hal.Gesture, error) {
	x, y, z, err := a.Sample()
	if err != nil {
		return hal.GestureNone, err
	}
	if a.shake.feed(x) {
		return hal.GestureShake, nil
	}
	return classify(x, y, z), nil
}

// SetRange sets the full-scale range in g. The sensor supports 2, 4
// and 8.
func (a *Accel) SetRange(g int) error {
	var r uint8
	switch g {
	case 2:
		r = lsm303agr.ACCEL_RANGE_2G
	case 4:
		r = lsm303agr.ACCEL_RANGE_4G
	case 8:
		r = lsm303agr.ACCEL_RANGE_8G
	default:
		return fmt.Errorf("accelerometer range %dg not available", g)
	}
	a.m.cfg.AccelRange = r
	if err := a.m.dev.Configure(a.m.cfg); err != nil {
		return fmt.Errorf("set accelerometer range: %w", err)
	}
	return nil
}

// Mag implements hal.Compass on the shared sensor. The LSM303AGR has
// no stored hard-iron calibration, so the calibrated flag is tracked
// here and Calibrate just records that the routine ran.
type Mag struct {
	m          *Motion
	calibrated bool
}

// Sample returns the current magnetic field in nanotesla per axis.
func (c *Mag) Sample() (x, y, z int, err error) {
	nx, ny, nz, err := c.m.dev.ReadMagneticField()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("read magnetic field: %w", err)
	}
	return int(nx), int(ny), int(nz), nil
}

func (c *Mag) Calibrated() (bool, error) {
	return c.calibrated, nil
}

func (c *Mag) ClearCalibration() error {
	c.calibrated = false
	return nil
}

func (c *Mag) Calibrate() error {
	c.calibrated = true
	return nil
}

// FieldStrength returns the magnitude of the field in nanotesla.
func (c *Mag) FieldStrength() (int, error) {
	x, y, z, err := c.Sample()
	if err != nil {
		return 0, err
	}
	return fieldStrength(x, y, z), nil
}

// Heading returns the tilt-uncompensated heading in degrees.
func (c *Mag) Heading() (int, error) {
	h, err := c.m.dev.ReadCompass()
	if err != nil {
		return 0, fmt.Errorf("read compass: %w", err)
	}
	return int(h) % 360, nil
}

func fieldStrength(x, y, z int) int {
	fx, fy, fz := float64(x), float64(y), float64(z)
	return int(math.Sqrt(fx*fx + fy*fy + fz*fz))
}
