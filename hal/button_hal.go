package hal

// Button table indices for a micro:bit layout board.
const (
	ButtonA = iota
	ButtonB

	NumButtons
)

// Button is one physical push button.
type Button interface {
	// IsPressed reports whether the button is currently held down.
	IsPressed() (bool, error)

	// WasPressed reports whether a press edge occurred since the previous
	// call, and resets the internal edge flag.
	WasPressed() (bool, error)

	// WakeOnActive arms or disarms the button as a low-power wake source.
	WakeOnActive(on bool) error
}
