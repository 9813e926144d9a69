package cev

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cev/raw"
)

// dropCounter counts how many times the container dropped it.
type dropCounter struct {
	count *int
}

func (d dropCounter) Drop() {
	*d.count++
}

func counters(n int, count *int) []dropCounter {
	out := make([]dropCounter, n)
	for i := range out {
		out[i] = dropCounter{count: count}
	}
	return out
}

// zstDrops counts drops of zstDropper values.
var zstDrops int

type zstDropper struct{}

func (zstDropper) Drop() {
	zstDrops++
}

// requireLayout checks the head placement a Cev must keep for its length.
func requireLayout[T any](t *testing.T, c *Cev[T]) {
	t.Helper()
	switch {
	case raw.IsZST[T](), c.Cap() == 0:
		require.Nil(t, c.Mem(), "no block expected")
		require.Zero(t, c.Head(), "head should be the sentinel")
	case c.Len() == 0:
		require.Equal(t, c.Cap()-1, c.Head(), "empty Cev should rest at cap-1")
	default:
		require.Equal(t, c.Cap()-c.Len(), c.Head(), "head should equal cap-len")
	}
}
