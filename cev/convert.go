package cev

import (
	"iter"
	"slices"

	"github.com/joshuapare/cev/raw"
)

// Of returns a Cev holding values in order, with capacity equal to length.
func Of[T any](values ...T) *Cev[T] {
	s := make([]T, len(values))
	copy(s, values)
	return FromSlice(s)
}

// FromSlice converts s into a Cev, taking ownership of its backing array.
// s must not be used afterwards.
//
// When len(s) == cap(s) the array is reused as is. Otherwise the elements are
// moved to the high end of the array and the vacated slots are zeroed.
func FromSlice[T any](s []T) *Cev[T] {
	n := len(s)
	if raw.IsZST[T]() {
		return &Cev[T]{len: n}
	}
	if cap(s) == 0 {
		return New[T]()
	}

	mem := s[:cap(s)]
	head := len(mem) - n
	switch {
	case n == 0:
		head = len(mem) - 1
	case head != 0:
		copy(mem[head:], mem[:n])
		clear(mem[:min(n, head)])
	}
	return &Cev[T]{buf: raw.FromRawParts(mem, head), len: n}
}

// Collect materializes seq into a Cev in iteration order.
func Collect[T any](seq iter.Seq[T]) *Cev[T] {
	return FromSlice(slices.Collect(seq))
}

// IntoSlice converts c into an ordinary slice, handing over its backing
// array. When c is full the array is returned as is; otherwise the elements
// are first moved to the low end. c is left empty with no allocation.
func (c *Cev[T]) IntoSlice() []T {
	n := c.len
	c.len = 0
	if raw.IsZST[T]() {
		return make([]T, n)
	}

	head := c.buf.Head()
	mem := c.buf.Take()
	if n != len(mem) {
		copy(mem, mem[head:head+n])
		clear(mem[n:])
	}
	return mem[:n]
}

// Clone returns a copy of c with capacity equal to its length.
// Elements are copied with assignment.
func (c *Cev[T]) Clone() *Cev[T] {
	n := c.len
	out := WithCapacity[T](n)
	if !raw.IsZST[T]() {
		copy(out.buf.Mem(), c.Slice())
	}
	out.SetLenHead(n)
	return out
}

// All returns an iterator over index-value pairs in index order.
func (c *Cev[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (c *Cev[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}
