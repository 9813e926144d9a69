package cev

import (
	"fmt"

	"github.com/joshuapare/cev/internal/buf"
	"github.com/joshuapare/cev/raw"
)

// The functions in this file expose the raw layout of a Cev. Callers must
// keep the layout invariants themselves: with capacity > 0, an empty Cev has
// Head() == Cap()-1 and a non-empty one has Head() == Cap()-Len().

// Head returns the offset of index 0 inside Mem(). For an empty Cev with
// capacity it is the resting slot Cap()-1; without an allocation it is 0.
func (c *Cev[T]) Head() int {
	return c.buf.Head()
}

// Mem returns the whole backing block, spare slots included. Nil when no
// block is allocated or T is zero-sized.
func (c *Cev[T]) Mem() []T {
	return c.buf.Mem()
}

// SpareCapacity returns the unused slots in front of the data,
// Mem()[:Cap()-Len()]. Nil for zero-sized T.
func (c *Cev[T]) SpareCapacity() []T {
	if raw.IsZST[T]() {
		return nil
	}
	return c.buf.Mem()[:c.buf.Capacity()-c.len]
}

// SetLen sets the length without moving Head.
//
// Preconditions: n <= Cap(), the n slots from Head() hold initialized values,
// and Head() is already where a Cev of length n keeps it.
func (c *Cev[T]) SetLen(n int) {
	c.len = n
}

// SetLenHead sets the length to n and moves Head to where a Cev of length n
// keeps it, so the last n slots of Mem() become the elements.
//
// Preconditions: n <= Cap().
func (c *Cev[T]) SetLenHead(n int) {
	c.buf.SetHeadFor(n)
	c.len = n
}

// FromRawParts builds a Cev over mem[:cap(mem)] whose elements are the length
// slots starting at head. It panics if that range lies outside the block.
func FromRawParts[T any](mem []T, head, length int) *Cev[T] {
	if raw.IsZST[T]() {
		return &Cev[T]{len: length}
	}
	if _, err := buf.CheckSpan(cap(mem), head, length); err != nil {
		panic(fmt.Sprintf("cev: raw parts: %v", err))
	}
	return &Cev[T]{buf: raw.FromRawParts(mem, head), len: length}
}
