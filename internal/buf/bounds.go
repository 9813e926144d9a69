// Package buf contains overflow-safe arithmetic used to size and index allocations.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// Used for count * elementSize when computing allocation layouts.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < math.MaxInt/b {
			return 0, false
		}
	case a > 0 && b < 0:
		if b < math.MinInt/a {
			return 0, false
		}
	default:
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckSpan validates that count slots starting at offset fit in an allocation of
// capacity slots. Returns the end offset if valid, or an error describing the
// specific failure (negative input, overflow or out of bounds).
//
//	end, err := buf.CheckSpan(len(mem), head, length)
//	if err != nil {
//	    panic(fmt.Sprintf("cev: %v", err))
//	}
func CheckSpan(capacity, offset, count int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}

	end, ok := AddOverflowSafe(offset, count)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + count=%d", offset, count)
	}
	if end > capacity {
		return 0, fmt.Errorf("bounds: end=%d > cap=%d", end, capacity)
	}
	return end, nil
}

// Has reports whether [off, off+n) lies within an allocation of capacity slots.
func Has(capacity, off, n int) bool {
	_, err := CheckSpan(capacity, off, n)
	return err == nil
}
