package workflow

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/notify"
)

// NotifyNode sends a notification based on current state.
//
// This node is placed at the end of the pipeline to notify interested
// parties of completion or failure. If no notifier is configured in the
// context, this is a no-op.
//
// Updates: None (only sends notification)
func NotifyNode(ctx flowgraph.Context, state State) (State, error) {
	notifier := notify.NotifierFromContext(ctx)
	if notifier == nil {
		return state, nil // No-op if no notifier
	}

	event := notify.Event{
		Type:      determineEventType(state),
		RunID:     state.RunID,
		Variant:   state.Variant.String(),
		Task:      state.Task,
		Timestamp: time.Now(),
		Metadata:  buildMetadata(state),
	}

	if state.Error != "" {
		event.Severity = notify.SeverityError
		event.Message = fmt.Sprintf("%s failed: %s", state.Task, state.Error)
	} else {
		event.Severity = notify.SeverityInfo
		event.Message = fmt.Sprintf("%s completed in %s", state.Task, state.AssembleDuration.Round(time.Millisecond))
	}

	// Notify but don't fail the build on notification errors
	_ = notifier.Notify(ctx, event)

	return state, nil
}

// determineEventType determines the event type from state
func determineEventType(state State) notify.EventType {
	if state.Error != "" {
		return notify.EventAssembleFailed
	}
	return notify.EventAssembleCompleted
}

// buildMetadata builds notification metadata from state
func buildMetadata(state State) map[string]any {
	meta := make(map[string]any)

	if state.Sweep != nil {
		for k, v := range sweepMetadata(state.Sweep) {
			meta[k] = v
		}
	}
	if state.SweepError != "" {
		meta["sweepError"] = state.SweepError
	}
	meta["duration"] = (state.SweepDuration + state.AssembleDuration).Round(time.Millisecond).String()

	return meta
}

func sweepMetadata(result *artifact.CleanupResult) map[string]any {
	meta := map[string]any{
		"packagesRemoved":  result.Count(artifact.KindPackage),
		"checksumsRemoved": result.Count(artifact.KindChecksum),
		"spaceSaved":       humanize.Bytes(uint64(result.SpaceSaved)),
	}
	if result.ArchiveID != "" {
		meta["archive"] = result.ArchiveID
	}
	if len(result.Errors) > 0 {
		meta["sweepProblems"] = len(result.Errors)
	}
	return meta
}
