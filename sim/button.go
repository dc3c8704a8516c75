package sim

// Button is a simulated push button.
type Button struct {
	pressed    bool
	pressEdges int
	wake       bool

	Fail error
}

// Press injects one press edge without changing the held state.
func (b *Button) Press() { b.pressEdges++ }

// Hold sets the instantaneous held state.
func (b *Button) Hold(down bool) { b.pressed = down }

// Wake reports whether the button is armed as a wake source.
func (b *Button) Wake() bool { return b.wake }

func (b *Button) IsPressed() (bool, error) {
	if b.Fail != nil {
		return false, b.Fail
	}
	return b.pressed, nil
}

func (b *Button) WasPressed() (bool, error) {
	if b.Fail != nil {
		return false, b.Fail
	}
	hit := b.pressEdges > 0
	b.pressEdges = 0
	return hit, nil
}

func (b *Button) WakeOnActive(on bool) error {
	if b.Fail != nil {
		return b.Fail
	}
	b.wake = on
	return nil
}
