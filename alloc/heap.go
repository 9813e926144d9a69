package alloc

import "sync/atomic"

var (
	acquired  atomic.Uint64
	released  atomic.Uint64
	liveBytes atomic.Int64
)

// Snapshot is a point-in-time copy of the accounting counters.
type Snapshot struct {
	Acquired  uint64 // blocks obtained with Make or Adopt
	Released  uint64 // blocks given back with Release
	LiveBytes int64  // bytes acquired and not yet released
}

// Live returns the number of blocks currently owned by engines.
func (s Snapshot) Live() int64 {
	return int64(s.Acquired) - int64(s.Released)
}

// Sub returns the counter deltas between s and an earlier snapshot.
func (s Snapshot) Sub(earlier Snapshot) Snapshot {
	return Snapshot{
		Acquired:  s.Acquired - earlier.Acquired,
		Released:  s.Released - earlier.Released,
		LiveBytes: s.LiveBytes - earlier.LiveBytes,
	}
}

// Stats returns the current accounting counters.
func Stats() Snapshot {
	return Snapshot{
		Acquired:  acquired.Load(),
		Released:  released.Load(),
		LiveBytes: liveBytes.Load(),
	}
}

// ResetStats zeroes the accounting counters.
func ResetStats() {
	acquired.Store(0)
	released.Store(0)
	liveBytes.Store(0)
}

// Make obtains a zeroed block of n values of type T from the Go heap.
// l must be the layout ArrayLayout[T](n) returned. The block is counted as acquired.
func Make[T any](n int, l Layout) ([]T, error) {
	if err := Guard(l); err != nil {
		return nil, err
	}
	mem := make([]T, n)
	Adopt(l)
	return mem, nil
}

// Adopt counts a block that entered engine ownership without Make.
func Adopt(l Layout) {
	acquired.Add(1)
	liveBytes.Add(int64(l.Size))
}

// Release counts a block that left engine ownership, either because it was
// dropped or because it was handed to a caller.
func Release(l Layout) {
	released.Add(1)
	liveBytes.Add(-int64(l.Size))
}
