package notify

import (
	"context"
	"log/slog"
	"sort"
)

// =============================================================================
// LogNotifier
// =============================================================================

// LogNotifier logs notifications using slog.
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs to the given logger.
// If logger is nil, uses the default slog logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, event Event) error {
	level := slog.LevelInfo
	switch event.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	attrs := []any{
		"type", event.Type,
		"run_id", event.RunID,
	}
	if event.Task != "" {
		attrs = append(attrs, "task", event.Task)
	}
	if len(event.Metadata) > 0 {
		attrs = append(attrs, metadataGroup(event.Metadata))
	}

	n.Logger.Log(ctx, level, event.Message, attrs...)
	return nil
}

// metadataGroup renders metadata as a sorted attribute group, so text output
// reads meta.packagesRemoved=2 meta.spaceSaved="41 MB".
func metadataGroup(metadata map[string]any) slog.Attr {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	return slog.Group("meta", attrs...)
}
