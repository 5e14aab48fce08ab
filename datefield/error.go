package datefield

import (
	"errors"
	"fmt"
)

// Resolution errors. Every failure reported by the field setters and the
// resolvers unwraps to exactly one of these.
var (
	// ErrNotEnough indicates that the populated fields are individually
	// valid but do not determine a unique result.
	ErrNotEnough = errors.New("not enough information")

	// ErrImpossible indicates that two or more populated fields, or a
	// populated field and a derived value, disagree.
	ErrImpossible = errors.New("impossible field combination")

	// ErrOutOfRange indicates a value outside the representable or
	// calendrically valid range.
	ErrOutOfRange = errors.New("value out of range")
)

// impossibleError returns an inconsistent field error with a custom
// message, which unwraps to ErrImpossible.
func impossibleError(message string) error {
	return fmt.Errorf("%w: %s", ErrImpossible, message)
}

// outOfRangeError returns a range error with a custom message, which
// unwraps to ErrOutOfRange.
func outOfRangeError(message string) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, message)
}

// notEnoughError returns an underdetermined input error with a custom
// message, which unwraps to ErrNotEnough.
func notEnoughError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotEnough, message)
}
