// Package notify provides notification services for build events.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Notification event with type, message, and metadata
//   - EventType: sweep_completed, assemble_started, assemble_completed, assemble_failed
//
// Implementations:
//   - SlackNotifier: Sends notifications to Slack webhooks
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - LogNotifier: Logs notifications through slog
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier
//
// Example usage:
//
//	notifier := notify.NewSlackNotifier(webhookURL,
//	    notify.WithSlackChannel("#android-builds"),
//	)
//	err := notifier.Notify(ctx, notify.Event{
//	    Type:    notify.EventAssembleCompleted,
//	    Task:    "assembleRelease",
//	    Message: "assembleRelease finished",
//	})
package notify
