package cev

import (
	"iter"

	"github.com/joshuapare/cev/raw"
)

// IntoIter consumes the elements of a Cev from either end.
//
// An IntoIter owns the block it was built from. Close must be called once
// the iterator is no longer needed; it drops the elements that were not
// consumed and gives the block back.
type IntoIter[T any] struct {
	buf raw.Buffer[T]

	// Elements [front, back) of buf are not yet consumed.
	front int
	back  int

	closed bool
}

// IntoIter moves c's elements and block into a consuming iterator.
// c is left empty with no allocation.
func (c *Cev[T]) IntoIter() *IntoIter[T] {
	head := c.buf.Head()
	it := &IntoIter[T]{
		buf:   c.buf,
		front: head,
		back:  head + c.len,
	}
	c.buf = raw.New[T]()
	c.len = 0
	return it
}

// Len returns the number of elements not yet consumed.
func (it *IntoIter[T]) Len() int {
	return it.back - it.front
}

// Next removes and returns the first remaining element.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}

	i := it.front
	it.front++
	if raw.IsZST[T]() {
		return zero, true
	}
	mem := it.buf.Mem()
	v := mem[i]
	mem[i] = zero
	return v, true
}

// NextBack removes and returns the last remaining element.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}

	it.back--
	if raw.IsZST[T]() {
		return zero, true
	}
	mem := it.buf.Mem()
	v := mem[it.back]
	mem[it.back] = zero
	return v, true
}

// Slice returns the remaining elements in order. Writes through the slice are
// seen by later calls to Next and NextBack.
func (it *IntoIter[T]) Slice() []T {
	if raw.IsZST[T]() {
		return make([]T, it.Len())
	}
	return it.buf.Mem()[it.front:it.back:it.back]
}

// All returns a single-use iterator that consumes the remaining elements in
// order. Elements left after an early break stay in it.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close drops the remaining elements and gives the block back.
// Calling Close more than once is a no-op.
func (it *IntoIter[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true

	rest := it.Slice()
	it.front = it.back
	defer it.buf.Release()
	dropAll(rest)
	return nil
}
