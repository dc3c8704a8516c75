// Package gpio backs board pins and buttons with a Linux GPIO character
// device, so the HAL can drive real header pins on a single-board
// computer. Touch sensing and analog I/O have no kernel-level
// equivalent here and report hal.ErrNotSupported.
//
// The real implementation is Linux-only; other platforms get
// constructors that fail cleanly.
package gpio

// DefaultChip is the GPIO character device most single-board computers
// expose their header on.
const DefaultChip = "gpiochip0"

// Config selects the chip and line offsets for a pin or button.
type Config struct {
	// Chip is the gpiochip device name. Empty means DefaultChip.
	Chip string

	// Offset is the line offset within the chip (BCM number on a
	// Raspberry Pi).
	Offset int

	// ActiveLow inverts the line; typical for buttons wired to ground.
	ActiveLow bool
}

func (c Config) chip() string {
	if c.Chip == "" {
		return DefaultChip
	}
	return c.Chip
}
