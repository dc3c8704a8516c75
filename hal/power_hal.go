package hal

import "time"

// PowerDriver controls the board power states. Wake source arming is a
// per-pin/per-button concern and lives on Pin and Button.
type PowerDriver interface {
	// Off powers the board down immediately.
	Off() error

	// DeepSleep enters deep sleep with a wake timer. Returns true if the
	// sleep ran to the timer or was interrupted by a wake event.
	DeepSleep(wake time.Duration) (bool, error)

	// DeepSleepUntilEvent enters deep sleep until a wake source fires.
	DeepSleepUntilEvent() error
}

// SystemDriver covers the board-level odds and ends: reset, panic,
// the die temperature sensor and the scheduler idle hook.
type SystemDriver interface {
	// Reset restarts the board.
	Reset()

	// Panic halts the board displaying the given error code.
	Panic(code int)

	// Temperature returns the silicon die temperature in Celsius.
	Temperature() (int, error)

	// Idle yields to background processing.
	Idle()
}

// RandomSource is the hardware random number generator.
type RandomSource interface {
	// Uint16 returns one 16-bit random draw.
	Uint16() uint16
}
