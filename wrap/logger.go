package wrap

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the wrap package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the wrap package's logger.
// This must be called before any wrap operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

// debugf traces per-parameter classification decisions.
func debugf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
