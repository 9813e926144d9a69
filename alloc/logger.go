package alloc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the logger used by the allocation engines.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the logger used by the allocation engines.
// A nil l restores the no-op logger. Safe to call concurrently with Logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
