package hal

import "errors"

// Result is the collapsed device-layer return code taxonomy the firmware
// runtime consumes. Every driver error folds into one of three values.
type Result uint8

const (
	ResultOK Result = iota
	ResultNoResources
	ResultError
)

var (
	// ErrNoResources reports exhausted device storage or channels. Drivers
	// wrap it so ResultOf can distinguish it from generic failures.
	ErrNoResources = errors.New("hal: no resources")

	// ErrNotSupported reports an operation the pin or device cannot
	// perform in its current mode, such as querying the analog period of
	// a pin that is not in analog mode.
	ErrNotSupported = errors.New("hal: not supported")

	// ErrBadIndex reports a pin or button index outside the device table.
	ErrBadIndex = errors.New("hal: index out of range")
)

// ResultOf collapses a driver error into the three-value taxonomy.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrNoResources):
		return ResultNoResources
	default:
		return ResultError
	}
}

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultNoResources:
		return "no resources"
	default:
		return "error"
	}
}
