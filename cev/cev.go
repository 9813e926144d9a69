package cev

import (
	"fmt"

	"github.com/joshuapare/cev/raw"
)

// Cev is a heap-backed array that grows toward its front.
// The zero value is an empty Cev ready to use.
type Cev[T any] struct {
	buf raw.Buffer[T]
	len int
}

// New returns an empty Cev. No memory is allocated until the first push.
func New[T any]() *Cev[T] {
	return &Cev[T]{buf: raw.New[T]()}
}

// WithCapacity returns an empty Cev with room for exactly n elements.
// No memory is allocated when n is zero or T is zero-sized.
func WithCapacity[T any](n int) *Cev[T] {
	return &Cev[T]{buf: raw.WithCapacity[T](n)}
}

// Len returns the number of elements.
func (c *Cev[T]) Len() int {
	return c.len
}

// Cap returns the number of elements c can hold without growing.
// Zero-sized element types report math.MaxInt.
func (c *Cev[T]) Cap() int {
	return c.buf.Capacity()
}

// IsEmpty reports whether c holds no elements.
func (c *Cev[T]) IsEmpty() bool {
	return c.len == 0
}

// Reserve ensures room for at least additional more elements.
// It panics if the new capacity overflows or cannot be allocated.
func (c *Cev[T]) Reserve(additional int) {
	c.buf.Reserve(c.len, additional)
}

// TryReserve is Reserve returning an *alloc.ReserveError instead of panicking.
// On failure c is unchanged.
func (c *Cev[T]) TryReserve(additional int) error {
	return c.buf.TryReserve(c.len, additional)
}

// Push adds v before every existing element.
func (c *Cev[T]) Push(v T) {
	if c.len == c.buf.Capacity() {
		c.buf.ReserveForPush(c.len)
	}
	if !raw.IsZST[T]() {
		if c.len != 0 {
			c.buf.MoveDown(1)
		}
		c.buf.Mem()[c.buf.Head()] = v
	}
	c.len++
}

// Pop removes and returns the first element, or false if c is empty.
func (c *Cev[T]) Pop() (T, bool) {
	var zero T
	if c.len == 0 {
		return zero, false
	}

	c.len--
	if raw.IsZST[T]() {
		return zero, true
	}

	mem, head := c.buf.Mem(), c.buf.Head()
	v := mem[head]
	mem[head] = zero
	if c.len != 0 {
		c.buf.MoveUp(1)
	}
	return v, true
}

// Insert places v at index, shifting the index elements before it one slot
// toward the front. Insert(0, v) is Push(v); Insert(c.Len(), v) puts v last.
// It panics if index > c.Len().
func (c *Cev[T]) Insert(index int, v T) {
	n := c.len
	if index < 0 || index > n {
		panic(fmt.Sprintf("cev: insertion index (is %d) should be <= len (is %d)", index, n))
	}

	if n == c.buf.Capacity() {
		c.Reserve(1)
	}

	if !raw.IsZST[T]() {
		mem, head := c.buf.Mem(), c.buf.Head()
		switch {
		case index == 0:
			if n != 0 {
				c.buf.MoveDown(1)
			}
		default:
			copy(mem[head-1:], mem[head:head+index])
			c.buf.MoveDown(1)
		}
		mem[c.buf.Head()+index] = v
	}
	c.len++
}

// Truncate shortens c to its last n elements, dropping the ones in front.
// It does nothing when n >= c.Len(). Capacity is unchanged.
func (c *Cev[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("cev: truncate length (is %d) should be >= 0", n))
	}
	if n >= c.len {
		return
	}

	count := c.len - n
	dropped := c.window(0, count)
	if !raw.IsZST[T]() {
		if n != 0 {
			c.buf.MoveUp(count)
		} else {
			c.buf.MoveUp(count - 1)
		}
	}
	c.len = n
	dropAll(dropped)
}

// Clear drops every element. Capacity is unchanged.
func (c *Cev[T]) Clear() {
	elems := c.Slice()
	c.SetLenHead(0)
	dropAll(elems)
}

// Append moves every element of other in front of the elements of c,
// preserving their order. other is left empty but keeps its capacity.
// It panics if other is c.
func (c *Cev[T]) Append(other *Cev[T]) {
	if other == c {
		panic("cev: append to self")
	}

	count := other.len
	c.Reserve(count)
	c.SetLenHead(c.len + count)
	if !raw.IsZST[T]() {
		src := other.Slice()
		copy(c.window(0, count), src)
		clear(src)
	}
	other.SetLenHead(0)
}

// Release drops every element and gives the backing block back. c is left
// empty with no allocation and may be reused.
func (c *Cev[T]) Release() {
	elems := c.Slice()
	c.len = 0
	defer c.buf.Release()
	dropAll(elems)
}

// Slice returns the elements in index order. The slice aliases c's storage
// and is valid until the next call that changes c's length or capacity.
func (c *Cev[T]) Slice() []T {
	return c.window(0, c.len)
}

// window returns logical elements [i, j).
func (c *Cev[T]) window(i, j int) []T {
	if raw.IsZST[T]() {
		return make([]T, j-i)
	}
	head := c.buf.Head()
	return c.buf.Mem()[head+i : head+j : head+j]
}

// At returns the element at index i. It panics if i is out of range.
func (c *Cev[T]) At(i int) T {
	return c.Slice()[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (c *Cev[T]) Set(i int, v T) {
	c.Slice()[i] = v
}
