package raw

import (
	"fmt"
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/joshuapare/cev/alloc"
	"github.com/joshuapare/cev/internal/buf"
)

// Buffer is an owned heap block plus a data-start offset into it.
// The zero value is an empty buffer with no block.
type Buffer[T any] struct {
	mem  []T
	head int
}

// IsZST reports whether T occupies no storage.
func IsZST[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// minCapacity is the smallest non-zero capacity grow will pick for T.
func minCapacity[T any]() int {
	var zero T
	switch size := unsafe.Sizeof(zero); {
	case size == 1:
		return 8
	case size <= 1024:
		return 4
	default:
		return 1
	}
}

// New returns an empty buffer. No memory is obtained.
func New[T any]() Buffer[T] {
	return Buffer[T]{}
}

// WithCapacity returns a buffer with room for exactly n elements, head at
// the resting position. It panics if the block cannot be obtained.
func WithCapacity[T any](n int) Buffer[T] {
	b, err := TryWithCapacity[T](n)
	alloc.HandleReserve(err)
	return b
}

// TryWithCapacity is WithCapacity returning the failure instead of panicking.
func TryWithCapacity[T any](n int) (Buffer[T], error) {
	if IsZST[T]() || n == 0 {
		return New[T](), nil
	}

	l, err := alloc.ArrayLayout[T](n)
	if err != nil {
		return Buffer[T]{}, err
	}
	mem, err := alloc.Make[T](n, l)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{mem: mem, head: n - 1}, nil
}

// FromRawParts adopts mem as the buffer's block with data starting at head.
// The whole of mem[:cap(mem)] becomes the block. It panics if head lies
// outside the block.
func FromRawParts[T any](mem []T, head int) Buffer[T] {
	if IsZST[T]() || cap(mem) == 0 {
		return New[T]()
	}

	mem = mem[:cap(mem)]
	if !buf.Has(len(mem), head, 1) {
		panic(fmt.Sprintf("raw: head %d outside block of %d slots", head, len(mem)))
	}

	alloc.Adopt(blockLayout(mem))
	return Buffer[T]{mem: mem, head: head}
}

// blockLayout returns the layout of a block that already exists. The Go heap
// served it, so its byte size is representable and ArrayLayout cannot fail.
func blockLayout[T any](mem []T) alloc.Layout {
	l, err := alloc.ArrayLayout[T](len(mem))
	if err != nil {
		panic(fmt.Sprintf("raw: layout of existing block: %v", err))
	}
	return l
}

// Capacity reports the number of slots owned; math.MaxInt for zero-sized T.
func (b *Buffer[T]) Capacity() int {
	if IsZST[T]() {
		return math.MaxInt
	}
	return len(b.mem)
}

// Head returns the data-start offset.
func (b *Buffer[T]) Head() int {
	return b.head
}

// Mem returns the whole block, including spare slots. Nil when no block is owned.
func (b *Buffer[T]) Mem() []T {
	return b.mem
}

// MoveUp advances head by k slots.
//
// Preconditions: the result stays within the block.
func (b *Buffer[T]) MoveUp(k int) {
	b.head += k
}

// MoveDown retreats head by k slots.
//
// Preconditions: the result stays within the block.
func (b *Buffer[T]) MoveDown(k int) {
	b.head -= k
}

// MoveTo sets head to off.
//
// Preconditions: off lies within the block.
func (b *Buffer[T]) MoveTo(off int) {
	b.head = off
}

// SetHeadFor places head where a container of length live elements keeps it.
//
// Preconditions: length <= Capacity().
func (b *Buffer[T]) SetHeadFor(length int) {
	if IsZST[T]() || len(b.mem) == 0 {
		return
	}
	b.head = restingHead(len(b.mem), length)
}

func restingHead(capacity, length int) int {
	if length == 0 {
		return capacity - 1
	}
	return capacity - length
}

// Reserve ensures room for at least additional more elements beyond length.
// It panics if the capacity overflows or the block cannot be obtained.
func (b *Buffer[T]) Reserve(length, additional int) {
	if b.needsToGrow(length, additional) {
		alloc.HandleReserve(b.grow(length, additional))
	}
}

// ReserveForPush grows the buffer by at least one slot. Called when the
// container is full.
func (b *Buffer[T]) ReserveForPush(length int) {
	alloc.HandleReserve(b.grow(length, 1))
}

// TryReserve is Reserve returning the failure instead of panicking.
func (b *Buffer[T]) TryReserve(length, additional int) error {
	if !b.needsToGrow(length, additional) {
		return nil
	}
	return b.grow(length, additional)
}

func (b *Buffer[T]) needsToGrow(length, additional int) bool {
	return additional > b.Capacity()-length
}

// grow moves the live region into a larger block, keeping it flush with the
// high end so the new slots sit below head.
func (b *Buffer[T]) grow(length, additional int) error {
	if IsZST[T]() {
		return &alloc.ReserveError{Kind: alloc.CapacityOverflow}
	}

	required, ok := buf.AddOverflowSafe(length, additional)
	if !ok {
		return &alloc.ReserveError{Kind: alloc.CapacityOverflow}
	}

	oldCap := len(b.mem)
	newCap := max(oldCap*2, required, minCapacity[T]())

	l, err := alloc.ArrayLayout[T](newCap)
	if err != nil {
		return err
	}
	mem, err := alloc.Make[T](newCap, l)
	if err != nil {
		return err
	}

	head := newCap - 1
	if oldCap != 0 {
		live := oldCap - b.head
		head = newCap - live
		copy(mem[head:], b.mem[b.head:])
		b.Release()
	}

	if ce := alloc.Logger().Check(zap.DebugLevel, "buffer grown"); ce != nil {
		ce.Write(
			zap.Int("old_cap", oldCap),
			zap.Int("new_cap", newCap),
			zap.Int("len", length),
			zap.Uint64("bytes", uint64(l.Size)),
		)
	}

	b.mem = mem
	b.head = head
	return nil
}

// Take hands the block to the caller. The buffer is left empty with no block.
// The block stops being accounted to the engine.
func (b *Buffer[T]) Take() []T {
	mem := b.mem
	if mem != nil {
		alloc.Release(blockLayout(mem))
	}
	b.mem = nil
	b.head = 0
	return mem
}

// Release gives the block back. Live slots are cleared first so the garbage
// collector can reclaim anything they reference. Calling Release on an empty
// buffer is a no-op.
func (b *Buffer[T]) Release() {
	if b.mem == nil {
		return
	}
	clear(b.mem)
	b.Take()
}
