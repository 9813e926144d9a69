package alloc

import (
	"unsafe"

	"github.com/joshuapare/cev/internal/buf"
)

// MaxAlloc is the largest block, in bytes, the allocator will attempt to serve.
// It tracks the Go heap's addressable range: 1<<47-1 on 64-bit platforms and
// 1<<31-1 on 32-bit ones.
const MaxAlloc = 1<<(31+16*(^uint(0)>>63)) - 1

// Layout describes one contiguous block of memory.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// ArrayLayout computes the layout of n contiguous values of type T.
// A negative n or a byte size that does not fit in an int is a CapacityOverflow.
func ArrayLayout[T any](n int) (Layout, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n < 0 {
		return Layout{}, capacityOverflow()
	}
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return Layout{}, capacityOverflow()
	}
	return Layout{Size: uintptr(total), Align: unsafe.Alignof(zero)}, nil
}

// Guard returns an AllocFailed error when l is larger than MaxAlloc.
func Guard(l Layout) error {
	if l.Size > MaxAlloc {
		return allocFailed(l)
	}
	return nil
}
