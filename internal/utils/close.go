package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes the given closer and logs any close error via slog.
// It never overrides a primary error already being returned by the caller,
// which makes it safe to use in defer statements around response bodies.
func CloseWithLog(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close resource", "error", err.Error())
	}
}
