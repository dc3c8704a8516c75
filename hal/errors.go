package hal

import "fmt"

func errRequired(what string) error {
	return fmt.Errorf("hal: %s is required", what)
}

func indexErr(what string, index int) error {
	return fmt.Errorf("hal: %s %d: %w", what, index, ErrBadIndex)
}

// missingErr reports an operation against a device the board was built
// without. Folds into the generic taxonomy but stays distinguishable via
// ErrNotSupported for callers that care.
func missingErr(what string) error {
	return fmt.Errorf("hal: no %s configured: %w", what, ErrNotSupported)
}
