// Package hal exposes a micro:bit style board to a firmware runtime as a
// flat forwarding surface. Every operation is a thin call onto a device
// set supplied at construction; the only state the Board itself owns is
// the per-channel event counters and the cached pin pull modes.
//
// The Board is single-context: it is meant to be driven from one poll
// loop and takes no locks. Drivers that receive events on their
// own goroutines must make their edge counts safe internally.
package hal

// Devices is the injectable device-services set the Board forwards into.
// Pins, Buttons, System and Random are required; a nil entry elsewhere
// makes the corresponding operations fail with ErrNotSupported.
type Devices struct {
	Pins    []Pin
	Buttons []Button
	Display DisplayDriver
	Accel   Accelerometer
	Compass Compass
	I2C     I2CBus
	SPI     SPIBus
	Serial  SerialPort
	Log     LogDriver
	Power   PowerDriver
	System  SystemDriver
	Random  RandomSource

	// Mixer is the virtual audio output channel analog writes to
	// PinMixer are routed to. Optional.
	Mixer AnalogWriter
}

// touchChannels is the number of tracked touch counters: pins P0..P2
// plus the logo pin on the fixed last slot.
const touchChannels = 4

// Board is the hardware abstraction surface. Not safe for concurrent
// use; see the package comment.
type Board struct {
	dev Devices

	pullState   []PullMode
	touchState  [touchChannels]counter
	buttonState []counter
}

// New validates the device set and returns a Board. Multiple independent
// Boards over distinct device sets are fine; sharing one device set
// between Boards is not.
func New(dev Devices) (*Board, error) {
	if len(dev.Pins) == 0 {
		return nil, errRequired("pin table")
	}
	if len(dev.Buttons) == 0 {
		return nil, errRequired("button table")
	}
	if dev.System == nil {
		return nil, errRequired("system driver")
	}
	if dev.Random == nil {
		return nil, errRequired("random source")
	}
	return &Board{
		dev:         dev,
		pullState:   make([]PullMode, len(dev.Pins)),
		buttonState: make([]counter, len(dev.Buttons)),
	}, nil
}

// pin resolves a pin table index, rejecting out-of-range and absent
// entries.
func (b *Board) pin(index int) (Pin, error) {
	if index < 0 || index >= len(b.dev.Pins) || b.dev.Pins[index] == nil {
		return nil, indexErr("pin", index)
	}
	return b.dev.Pins[index], nil
}

func (b *Board) button(index int) (Button, error) {
	if index < 0 || index >= len(b.dev.Buttons) || b.dev.Buttons[index] == nil {
		return nil, indexErr("button", index)
	}
	return b.dev.Buttons[index], nil
}

// Reset restarts the board. Does not return on real hardware.
func (b *Board) Reset() {
	b.dev.System.Reset()
}

// Panic halts the board with the given error code.
func (b *Board) Panic(code int) {
	b.dev.System.Panic(code)
}

// Temperature returns the die temperature in Celsius.
func (b *Board) Temperature() (int, error) {
	return b.dev.System.Temperature()
}

// Idle yields to the device layer's background processing.
func (b *Board) Idle() {
	b.dev.System.Idle()
}

// RandomWord combines two 16-bit hardware draws into one 32-bit word,
// first draw in the high half. Consumed by the filesystem for entropy.
func (b *Board) RandomWord() uint32 {
	return uint32(b.dev.Random.Uint16())<<16 | uint32(b.dev.Random.Uint16())
}
