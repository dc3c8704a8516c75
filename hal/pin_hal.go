package hal

// PullMode selects the resistor configuration of a digital input.
// The values follow the order the firmware runtime uses on the wire.
type PullMode uint8

const (
	PullUp PullMode = iota
	PullDown
	PullNone
)

// TouchMode selects how a touch-capable pin detects a touch.
type TouchMode uint8

const (
	TouchResistive TouchMode = iota
	TouchCapacitive
)

// Canonical pin table indices for a micro:bit / Calliope mini layout
// board. The edge connector pins come first, then the internal pins,
// then the Calliope-only tail. Device sets with fewer pins may leave
// trailing table entries nil.
const (
	PinP0 = iota
	PinP1
	PinP2
	PinP3
	PinP4
	PinP5
	PinP6
	PinP7
	PinP8
	PinP9
	PinP10
	PinP11
	PinP12
	PinP13
	PinP14
	PinP15
	PinP16
	PinP19 // external I2C SCL
	PinP20 // external I2C SDA
	PinLogo
	PinSpeaker
	PinRunMic
	PinMicrophone
	PinIntSDA // internal I2C
	PinIntSCL // internal I2C
	PinRow1
	PinRow2
	PinRow3
	PinRow4
	PinRow5
	PinUSBTx
	PinUSBRx
	PinIRQ1

	// Calliope mini additions: the second UART TX, an extra edge pin,
	// the on-board RGB LED data pin and the motor driver controls.
	PinA1TX
	PinP18
	PinRGB
	PinMotorAIn1
	PinMotorAIn2
	PinMotorBIn1
	PinMotorBIn2
	PinMotorMode

	NumPins
)

// PinMixer is the virtual audio mixer channel. It is not part of the pin
// table; analog writes to it are routed to the Devices.Mixer output.
const PinMixer = NumPins

// Pin is one addressable physical pin. Implementations handle the actual
// hardware control; the Board only forwards and keeps per-channel state.
type Pin interface {
	// DigitalRead returns the current logic level, 0 or 1.
	DigitalRead() (int, error)

	// DigitalWrite drives the pin to the given logic level.
	DigitalWrite(value int) error

	// AnalogRead samples the pin and returns a 10-bit value (0-1023).
	AnalogRead() (int, error)

	// AnalogWrite outputs a 10-bit PWM duty value (0-1023). The first
	// analog write places the pin in analog mode.
	AnalogWrite(value int) error

	// AnalogPeriodUs returns the configured PWM period in microseconds.
	// Returns ErrNotSupported if the pin is not in analog mode.
	AnalogPeriodUs() (int, error)

	// SetAnalogPeriodUs changes the PWM period. Fails with ErrNotSupported
	// if the pin is not in analog mode.
	SetAnalogPeriodUs(period int) error

	// SetPull configures the pin's pull resistor.
	SetPull(mode PullMode) error

	// SetTouchMode selects the touch detection method.
	SetTouchMode(mode TouchMode) error

	// TouchCalibrate re-runs the capacitive touch baseline calibration.
	TouchCalibrate() error

	// IsTouched reports whether the pin is currently touched.
	IsTouched() (bool, error)

	// WasTouched returns the number of touch edges detected since the
	// previous call, and resets the internal edge count.
	WasTouched() (int, error)

	// WakeOnActive arms or disarms the pin as a low-power wake source.
	WakeOnActive(on bool) error
}

// StripWriter is an optional capability of pins that can drive a WS2812
// ("neopixel") strip. The Board type-asserts for it on demand.
type StripWriter interface {
	// WriteStrip shifts the raw GRB byte buffer out on the pin.
	WriteStrip(buf []byte) error
}

// AnalogWriter is a write-only analog output. The audio mixer virtual
// channel is the only instance the Board routes to.
type AnalogWriter interface {
	AnalogWrite(value int) error
	SetAnalogPeriodUs(period int) error
}
