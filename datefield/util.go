package datefield

import "math"

// floorDiv returns the quotient of a/b rounded towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of a/b with the sign of b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// toInt32 narrows a wide integer, reporting ErrOutOfRange on overflow.
func toInt32(value int64) (int32, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return int32(value), nil
}

// toUint32 narrows a wide integer, reporting ErrOutOfRange when the value
// is negative or overflows.
func toUint32(value int64) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, ErrOutOfRange
	}
	return uint32(value), nil
}

// addInt64 adds two signed integers, reporting overflow.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
