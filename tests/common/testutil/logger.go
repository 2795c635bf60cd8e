//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger swallows everything; tests assert on behaviour, not log lines.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
