package raw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/joshuapare/cev/alloc"
)

type zst struct{}

type word [8]byte

type large [1025]byte

// requireSentinel checks the state shared by unallocated and zero-sized buffers.
func requireSentinel[T any](t *testing.T, b *Buffer[T]) {
	t.Helper()
	require.Nil(t, b.Mem(), "no block should be owned")
	require.Zero(t, b.Head(), "head should be the sentinel")
}

func TestBuffer_New(t *testing.T) {
	b := New[uint32]()
	requireSentinel(t, &b)
	assert.Zero(t, b.Capacity())
}

func TestBuffer_WithCapacity_RestingPosition(t *testing.T) {
	for _, n := range []int{1, 2, 5, 64} {
		b := WithCapacity[uint16](n)
		require.Equal(t, n, b.Capacity())
		require.Len(t, b.Mem(), n)
		assert.Equal(t, n-1, b.Head(), "empty buffer rests at the highest slot (cap=%d)", n)
		b.Release()
	}

	b := WithCapacity[uint16](0)
	requireSentinel(t, &b)
}

func TestBuffer_ZeroSized(t *testing.T) {
	cases := []Buffer[zst]{
		New[zst](),
		WithCapacity[zst](0),
		WithCapacity[zst](100),
		WithCapacity[zst](math.MaxInt),
	}
	for i := range cases {
		b := &cases[i]
		requireSentinel(t, b)
		assert.Equal(t, math.MaxInt, b.Capacity())
	}

	b := New[zst]()
	err := b.TryReserve(100, math.MaxInt-100)
	assert.NoError(t, err, "fits in an unbounded capacity")

	err = b.TryReserve(101, math.MaxInt-100)
	require.ErrorIs(t, err, alloc.ErrCapacityOverflow)
	requireSentinel(t, &b)

	assert.PanicsWithError(t, (&alloc.ReserveError{Kind: alloc.CapacityOverflow}).Error(), func() {
		b.ReserveForPush(math.MaxInt)
	})
}

func TestBuffer_GrowthThresholds(t *testing.T) {
	tests := []struct {
		name string
		want []int
		run  func(pushes int) []int
	}{
		{"single byte", []int{8, 16, 32, 64}, capacityTrace[byte]},
		{"word", []int{4, 8, 16, 32}, capacityTrace[word]},
		{"1024 bytes", []int{4, 8, 16}, capacityTrace[[1024]byte]},
		{"over 1024 bytes", []int{1, 2, 4, 8}, capacityTrace[large]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := tt.want[len(tt.want)-1]
			assert.Equal(t, tt.want, tt.run(last))
		})
	}
}

// capacityTrace pushes n elements one at a time, the way a container does, and
// records every capacity the buffer grows to.
func capacityTrace[T any](n int) []int {
	b := New[T]()
	defer b.Release()

	var trace []int
	for length := 0; length < n; length++ {
		if length == b.Capacity() {
			b.ReserveForPush(length)
			trace = append(trace, b.Capacity())
		}
		if length != 0 {
			b.MoveDown(1)
		}
	}
	return trace
}

func TestBuffer_GrowPreservesHighEnd(t *testing.T) {
	b := WithCapacity[int](4)
	defer b.Release()

	// Fill from the top: logical [1 2 3 4] at slots 0..3.
	for i, v := range []int{4, 3, 2, 1} {
		if i != 0 {
			b.MoveDown(1)
		}
		b.Mem()[b.Head()] = v
	}
	require.Zero(t, b.Head())

	b.Reserve(4, 1)
	require.Equal(t, 8, b.Capacity())
	assert.Equal(t, 4, b.Head(), "head should equal cap-len after growth")
	assert.Equal(t, []int{1, 2, 3, 4}, b.Mem()[b.Head():])
	assert.Equal(t, []int{0, 0, 0, 0}, b.Mem()[:b.Head()], "new slots are zeroed")
}

func TestBuffer_GrowWhileEmpty(t *testing.T) {
	b := WithCapacity[int](2)
	defer b.Release()

	b.Reserve(0, 10)
	require.Equal(t, 10, b.Capacity(), "required beats doubling")
	assert.Equal(t, 9, b.Head(), "empty buffer keeps its resting position")
}

func TestBuffer_ReserveNoop(t *testing.T) {
	b := WithCapacity[int](8)
	defer b.Release()

	mem := b.Mem()
	b.Reserve(3, 5)
	assert.Equal(t, 8, b.Capacity())
	assert.Same(t, &mem[0], &b.Mem()[0], "sufficient capacity must not reallocate")
}

func TestBuffer_TryReserve_Errors(t *testing.T) {
	b := WithCapacity[byte](1)
	defer b.Release()

	err := b.TryReserve(1, math.MaxInt)
	require.ErrorIs(t, err, alloc.ErrCapacityOverflow)

	err = b.TryReserve(0, alloc.MaxAlloc+1)
	require.ErrorIs(t, err, alloc.ErrAllocFailed)

	var re *alloc.ReserveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, uintptr(alloc.MaxAlloc+1), re.Layout.Size)
	assert.Equal(t, uintptr(1), re.Layout.Align)

	assert.Equal(t, 1, b.Capacity(), "a failed reservation leaves the buffer untouched")
	assert.Zero(t, b.Head())

	l, err := alloc.ArrayLayout[uint64](math.MaxInt / 4)
	require.Error(t, err)
	assert.Equal(t, alloc.Layout{}, l)
	_, err = TryWithCapacity[uint64](math.MaxInt / 4)
	require.ErrorIs(t, err, alloc.ErrCapacityOverflow)
}

func TestBuffer_SetHeadFor(t *testing.T) {
	b := WithCapacity[int](6)
	defer b.Release()

	tests := []struct {
		length int
		head   int
	}{
		{0, 5},
		{1, 5},
		{4, 2},
		{6, 0},
	}
	for _, tt := range tests {
		b.SetHeadFor(tt.length)
		assert.Equal(t, tt.head, b.Head(), "length=%d", tt.length)
	}

	z := New[zst]()
	z.SetHeadFor(10)
	requireSentinel(t, &z)
}

func TestBuffer_MovePrimitives(t *testing.T) {
	b := WithCapacity[int](8)
	defer b.Release()

	b.MoveDown(3)
	assert.Equal(t, 4, b.Head())
	b.MoveUp(2)
	assert.Equal(t, 6, b.Head())
	b.MoveTo(0)
	assert.Zero(t, b.Head())
}

func TestBuffer_Accounting(t *testing.T) {
	before := alloc.Stats()

	b := WithCapacity[int](4)
	b.Reserve(0, 5)
	b.Reserve(0, 100)
	b.Release()
	b.Release()

	delta := alloc.Stats().Sub(before)
	assert.Equal(t, uint64(3), delta.Acquired)
	assert.Equal(t, uint64(3), delta.Released, "every block is released exactly once")
	assert.Zero(t, delta.LiveBytes)
}

func TestBuffer_FromRawPartsAndTake(t *testing.T) {
	before := alloc.Stats()

	s := make([]string, 2, 5)
	b := FromRawParts(s, 3)
	assert.Equal(t, 5, b.Capacity())
	assert.Equal(t, 3, b.Head())

	mem := b.Take()
	assert.Len(t, mem, 5)
	requireSentinel(t, &b)

	delta := alloc.Stats().Sub(before)
	assert.Equal(t, uint64(1), delta.Acquired)
	assert.Equal(t, uint64(1), delta.Released)

	assert.Panics(t, func() { FromRawParts(make([]int, 4), 4) })

	empty := FromRawParts[int](nil, 0)
	requireSentinel(t, &empty)
}

func TestBuffer_GrowLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	alloc.SetLogger(zap.New(core))
	t.Cleanup(func() { alloc.SetLogger(nil) })

	b := New[byte]()
	b.ReserveForPush(0)
	b.Release()

	entries := logs.FilterMessage("buffer grown").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(0), fields["old_cap"])
	assert.Equal(t, int64(8), fields["new_cap"])
}

func TestBuffer_AdoptedBytesMatchBlock(t *testing.T) {
	mem := make([]uint32, 3, 5)
	want, err := alloc.ArrayLayout[uint32](5)
	require.NoError(t, err)
	assert.Equal(t, want, blockLayout(mem[:cap(mem)]))

	before := alloc.Stats()
	b := FromRawParts(mem, 4)
	assert.Equal(t, int64(20), alloc.Stats().Sub(before).LiveBytes, "the whole backing array is counted")

	b.Take()
	assert.Zero(t, alloc.Stats().Sub(before).LiveBytes)
	assert.Equal(t, uint64(1), alloc.Stats().Sub(before).Released)
}
