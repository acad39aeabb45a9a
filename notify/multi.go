package notify

import (
	"context"
	"errors"
	"log/slog"
)

// =============================================================================
// MultiNotifier
// =============================================================================

// MultiNotifier sends notifications to multiple notifiers.
type MultiNotifier struct {
	Notifiers []Notifier
	Logger    *slog.Logger
}

// NewMultiNotifier creates a notifier that fans out to multiple notifiers.
// Every notifier is tried; failures are logged and joined into the result.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{
		Notifiers: notifiers,
		Logger:    slog.Default(),
	}
}

// Notify implements Notifier.
func (n *MultiNotifier) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, notifier := range n.Notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			errs = append(errs, err)
			if n.Logger != nil {
				n.Logger.Warn("notifier failed",
					"error", err,
					"event_type", event.Type,
					"run_id", event.RunID,
				)
			}
		}
	}
	return errors.Join(errs...)
}

// =============================================================================
// NopNotifier
// =============================================================================

// NopNotifier is a no-op notifier that discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(ctx context.Context, event Event) error {
	return nil
}

// =============================================================================
// Construction from settings
// =============================================================================

// New builds the notifier apksweep runs with: events are always logged, and
// also posted to each non-empty webhook URL.
func New(logger *slog.Logger, webhookURL, slackWebhookURL string) Notifier {
	notifiers := []Notifier{NewLogNotifier(logger)}
	if webhookURL != "" {
		notifiers = append(notifiers, NewWebhookNotifier(webhookURL, nil))
	}
	if slackWebhookURL != "" {
		notifiers = append(notifiers, NewSlackNotifier(slackWebhookURL))
	}
	if len(notifiers) == 1 {
		return notifiers[0]
	}
	multi := NewMultiNotifier(notifiers...)
	if logger != nil {
		multi.Logger = logger
	}
	return multi
}
