// Package alloc sizes, obtains and accounts for the heap blocks that back
// front-growth arrays, and classifies the ways that can fail.
//
// # Layouts
//
// A Layout is the size and alignment of one contiguous block of n elements:
//
//	l, err := alloc.ArrayLayout[uint64](capacity)
//	if err != nil {
//	    return err // *ReserveError, Kind == CapacityOverflow
//	}
//
// # Failure kinds
//
// Two failure kinds exist, both carried by *ReserveError:
//
//   - CapacityOverflow: the element count or byte size cannot be represented.
//     No layout is attached.
//   - AllocFailed: the layout is valid but the allocator cannot serve it. The
//     failed layout is attached for reporting.
//
// Classify with errors.Is against ErrCapacityOverflow and ErrAllocFailed.
//
// # Fatal policy
//
// Engines expose result-returning entry points (TryReserve and friends). The
// default entry points pass their result to HandleReserve, which panics with
// the *ReserveError. An allocation failure is not expected to be recovered
// from; an unrecovered panic terminates the program.
//
// # Accounting
//
// Every block obtained with Make or adopted with Adopt is counted as acquired;
// every block given back with Release is counted as released. Stats returns a
// snapshot of the counters. The counters are atomic and process-wide.
//
// # Thread Safety
//
// Functions in this package are safe to call concurrently. The containers
// built on top of it are not.
package alloc
