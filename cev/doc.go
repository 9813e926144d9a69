// Package cev provides Cev, a growable array that grows toward its front.
//
// # Overview
//
// Push adds an element before every existing one, and the spare capacity of
// the backing block always sits in front of the data, so building a sequence
// by repeated prepends never shifts elements:
//
//	c := cev.New[int]()
//	c.Push(1)
//	c.Push(2)
//	c.Push(3)
//	fmt.Println(c) // [3 2 1]
//
// Index 0 is always the most recently pushed element and the lowest slot in
// use. Because of this orientation some operations mirror their usual slice
// counterparts:
//
//   - Pop removes index 0.
//   - Insert shifts the elements before the insertion point toward the front.
//   - Truncate(n) keeps the last n elements and drops the front ones.
//   - Append(other) places other's elements before the receiver's.
//
// # Conversions
//
// FromSlice and IntoSlice move a block between a Cev and an ordinary slice.
// When length equals capacity the block is reused verbatim; otherwise the
// data is moved once within the same block (to the high end for FromSlice,
// to the low end for IntoSlice).
//
// # Element Cleanup
//
// Elements whose type implements Dropper have Drop called exactly once when
// the container destroys them: Truncate, Clear, Release and IntoIter.Close.
// Elements handed back to the caller (Pop, IntoSlice, IntoIter.Next) are not
// dropped.
//
// # Failure Policy
//
// Allocation failures panic with an *alloc.ReserveError; TryReserve returns
// the error instead. Index errors panic like slice indexing does.
//
// # Thread Safety
//
// A Cev is not safe for concurrent use. Callers must synchronize access
// externally.
package cev
