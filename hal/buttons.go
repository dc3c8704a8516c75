package hal

// ButtonState reports whether a button is currently held down. If
// wasPressed or presses is non-nil the button's press counter is polled:
// a press edge reported by the device layer is folded in, then each
// requested output is taken, clearing only the bits it read. The two
// outputs are independent; either, both or neither may be requested.
func (b *Board) ButtonState(button int, wasPressed *bool, presses *int) (bool, error) {
	btn, err := b.button(button)
	if err != nil {
		return false, err
	}
	if wasPressed != nil || presses != nil {
		hit, err := btn.WasPressed()
		if err != nil {
			return false, err
		}
		st := &b.buttonState[button]
		if hit {
			st.fold(1)
		}
		if wasPressed != nil {
			*wasPressed = st.takeTriggered()
		}
		if presses != nil {
			*presses = st.takeCount()
		}
	}
	return btn.IsPressed()
}
