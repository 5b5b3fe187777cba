package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	globalLogger *slog.Logger
	mu           sync.RWMutex
)

// SetGlobal installs the logger used by packages that have no logger handed to
// them directly. The CLI calls this once after flag parsing.
func SetGlobal(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// Get returns the global logger, or a default Info-level text handler on
// stderr when nothing has been installed (library callers, tests).
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger != nil {
		return globalLogger
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}
