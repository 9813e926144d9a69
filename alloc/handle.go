package alloc

import (
	"errors"

	"go.uber.org/zap"
)

// HandleReserve applies the fatal policy to the result of a reservation.
// A nil err is a no-op. CapacityOverflow panics; AllocFailed is passed to
// HandleAllocError.
func HandleReserve(err error) {
	if err == nil {
		return
	}

	var re *ReserveError
	if !errors.As(err, &re) {
		Logger().Error("reserve failed", zap.Error(err))
		panic(err)
	}

	switch re.Kind {
	case AllocFailed:
		HandleAllocError(re.Layout)
	default:
		Logger().Error("capacity overflow")
		panic(re)
	}
}

// HandleAllocError reports that the allocator could not serve l and panics.
func HandleAllocError(l Layout) {
	Logger().Error("memory allocation failed",
		zap.Uint64("size", uint64(l.Size)),
		zap.Uint64("align", uint64(l.Align)))
	panic(allocFailed(l))
}
