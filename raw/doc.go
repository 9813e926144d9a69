// Package raw implements Buffer, the allocation engine behind front-growth arrays.
//
// # Overview
//
// A Buffer owns at most one heap block (a []T whose length equals its
// capacity) and a data-start offset, head, that slides inside it. Spare
// capacity always lives below head; growth only ever adds slots at the low
// end, so prepending never shifts existing data.
//
// A Buffer with capacity 4 holding the bytes b and a at logical indexes 0
// and 1 looks like this:
//
//	index  0       1       2       3
//	      +-------+-------+-------+-------+
//	      | spare | spare |   b   |   a   |
//	      +-------+-------+-------+-------+
//	                        ^ head = 2
//
// # Invariants
//
// For a container holding length live elements:
//
//   - capacity == 0, or T is zero-sized: no block, head == 0.
//   - length > 0: head == capacity - length.
//   - length == 0 and capacity > 0: head == capacity - 1 (the resting
//     position, so the next push writes without moving head).
//
// Buffer does not know the length; the container passes it in and keeps the
// invariants with SetHeadFor and the Move* primitives.
//
// # Growth
//
// When more room is needed the new capacity is max(2*cap, len+additional,
// minimum), where the minimum is 8 slots for 1-byte elements, 4 for elements
// up to 1 KiB and 1 for larger ones. The live region is copied to the high end
// of the new block.
//
// # Zero-Sized Types
//
// For zero-sized T the capacity is reported as math.MaxInt and no block is
// ever obtained. Asking such a buffer to grow is a capacity overflow.
//
// # Thread Safety
//
// Buffer is not safe for concurrent use.
package raw
