package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow indicates the computed capacity exceeded the collection's maximum.
	ErrCapacityOverflow = errors.New("alloc: capacity overflow")

	// ErrAllocFailed indicates the allocator could not serve a valid layout.
	ErrAllocFailed = errors.New("alloc: allocation failed")
)

// Kind classifies a reservation failure.
type Kind uint8

const (
	// CapacityOverflow means the request could not be represented.
	CapacityOverflow Kind = iota + 1
	// AllocFailed means the allocator refused a valid layout.
	AllocFailed
)

func (k Kind) String() string {
	switch k {
	case CapacityOverflow:
		return "capacity overflow"
	case AllocFailed:
		return "alloc failed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ReserveError is returned when a buffer cannot grow to the requested capacity.
type ReserveError struct {
	Kind Kind
	// Layout is the layout the allocator refused. Zero for CapacityOverflow.
	Layout Layout
}

func (e *ReserveError) Error() string {
	switch e.Kind {
	case CapacityOverflow:
		return "memory allocation failed because the computed capacity exceeded the collection's maximum"
	case AllocFailed:
		return fmt.Sprintf("memory allocation failed because the memory allocator returned an error (size=%d, align=%d)",
			e.Layout.Size, e.Layout.Align)
	default:
		return "memory allocation failed"
	}
}

// Is lets errors.Is match the package sentinels.
func (e *ReserveError) Is(target error) bool {
	switch target {
	case ErrCapacityOverflow:
		return e.Kind == CapacityOverflow
	case ErrAllocFailed:
		return e.Kind == AllocFailed
	}
	return false
}

func capacityOverflow() *ReserveError {
	return &ReserveError{Kind: CapacityOverflow}
}

func allocFailed(l Layout) *ReserveError {
	return &ReserveError{Kind: AllocFailed, Layout: l}
}
