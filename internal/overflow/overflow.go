// Package overflow provides checked integer arithmetic for capacity and
// byte-cost calculations. Unchecked arithmetic here would silently wrap and
// reintroduce the exact bug class the growth logic guards against.
package overflow

import (
	"errors"
	"math"
)

// MaxLength is the largest backing-store length a container may request.
// Kept a few elements under math.MaxInt so length-derived arithmetic in
// callers has headroom before wrapping.
const MaxLength = math.MaxInt - 8

// ErrCapacityOverflow indicates a required capacity exceeds MaxLength and
// cannot be satisfied at any budget.
var ErrCapacityOverflow = errors.New("overflow: required capacity exceeds maximum length")

// Add adds a and b, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Add64 adds a and b, returning ok = false when the result would overflow
// int64.
func Add64(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul64 multiplies a and b, returning ok = false when the result would
// overflow int64. This is essential for count * elementSize cost calculations.
func Mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt64/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt64/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt64/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt64/b {
			return 0, false
		}
	}
	return a * b, true
}

// GrownCapacity computes the next backing-store length for a container of the
// given size: size + size/2 + 1 (grow by 50%). When that result overflows or
// exceeds MaxLength the capacity is clamped to MaxLength, unless even minimum
// cannot fit, in which case ErrCapacityOverflow is returned.
func GrownCapacity(size, minimum int) (int, error) {
	newCapacity, ok := Add(size, size/2)
	if ok {
		newCapacity, ok = Add(newCapacity, 1)
	}
	if !ok || newCapacity > MaxLength {
		if minimum > MaxLength {
			return 0, ErrCapacityOverflow
		}
		newCapacity = MaxLength
	}
	return newCapacity, nil
}
