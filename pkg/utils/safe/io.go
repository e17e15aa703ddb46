package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// Close closes closer and logs a failure together with what was being closed.
// A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer, what string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.String("target", what), slog.Any("error", err))
	}
}

// Write writes data to w and logs a failure. Used once response headers are committed.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write", slog.Int("bytes", len(data)), slog.Any("error", err))
	}
}
