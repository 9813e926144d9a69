package cev

import (
	"cmp"
	"fmt"
	"slices"
)

// Equal reports whether c holds the same elements as s, in the same order.
func Equal[T comparable](c *Cev[T], s []T) bool {
	return slices.Equal(c.Slice(), s)
}

// EqualCev reports whether a and b hold the same elements in the same order.
// Capacity is not compared.
func EqualCev[T comparable](a, b *Cev[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// Compare compares a and b lexicographically, like slices.Compare.
func Compare[T cmp.Ordered](a, b *Cev[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// String formats the elements like a slice.
func (c *Cev[T]) String() string {
	return fmt.Sprint(c.Slice())
}
