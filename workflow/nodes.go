package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	"github.com/randalmurphal/apksweep/artifact"
	devcontext "github.com/randalmurphal/apksweep/context"
	"github.com/randalmurphal/apksweep/notify"
)

// SweepNode deletes stale packages and checksums from the output directory.
//
// The sweep is best-effort: a failure is logged and recorded on
// state.SweepError, and the build goes on. Only cancellation stops it.
//
// Updates: state.Sweep, state.SweepError, state.SweepDuration, state.Completed
func SweepNode(ctx flowgraph.Context, state State) (State, error) {
	logger := devcontext.Logger(ctx)

	cleaner := devcontext.Cleaner(ctx)
	if cleaner == nil {
		logger.Debug("no cleaner configured, skipping sweep")
		state.markCompleted(TaskCleanOldApks)
		return state, nil
	}

	start := time.Now()
	result, err := cleaner.Clean(ctx)
	state.SweepDuration = time.Since(start)
	state.Sweep = result

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return state, ctxErr
		}
		logger.Warn("sweep failed, continuing with build",
			"dir", cleaner.Dir(),
			"error", err,
		)
		state.SweepError = err.Error()
	}

	if result != nil {
		notifySweep(ctx, state, result)
	}

	state.markCompleted(TaskCleanOldApks)
	return state, nil
}

// AssembleNode runs the packaging command for state.Variant.
//
// Prerequisites: every task in Prerequisites(state.Task) has completed
// Updates: state.Output, state.AssembleDuration, state.Error, state.Completed
//
// A failing command is recorded on state.Error rather than returned so that
// NotifyNode still runs.
func AssembleNode(ctx flowgraph.Context, state State) (State, error) {
	for _, pre := range Prerequisites(state.Task) {
		if !state.HasCompleted(pre) {
			return state, fmt.Errorf("%s: prerequisite %s has not run", state.Task, pre)
		}
	}

	if len(state.Command) == 0 {
		state.Error = fmt.Sprintf("no packaging command configured for %s", state.Task)
		return state, nil
	}

	logger := devcontext.Logger(ctx)
	logger.Info("assembling",
		"task", state.Task,
		"command", strings.Join(state.Command, " "),
	)
	if notifier := notify.NotifierFromContext(ctx); notifier != nil {
		_ = notifier.Notify(ctx, notify.Event{
			Type:      notify.EventAssembleStarted,
			RunID:     state.RunID,
			Variant:   state.Variant.String(),
			Task:      state.Task,
			Message:   fmt.Sprintf("%s started", state.Task),
			Severity:  notify.SeverityInfo,
			Timestamp: time.Now(),
		})
	}

	start := time.Now()
	output, err := devcontext.GetRunner(ctx).Run(ctx, state.WorkDir, state.Command[0], state.Command[1:]...)
	state.AssembleDuration = time.Since(start)
	state.Output = output

	if err != nil {
		logger.Error("assemble failed", "task", state.Task, "error", err)
		state.SetError(err)
		return state, nil
	}

	state.markCompleted(state.Task)
	return state, nil
}

func notifySweep(ctx flowgraph.Context, state State, result *artifact.CleanupResult) {
	notifier := notify.NotifierFromContext(ctx)
	if notifier == nil {
		return
	}

	severity := notify.SeverityInfo
	if result.HasErrors() || state.SweepError != "" {
		severity = notify.SeverityWarning
	}

	msg := fmt.Sprintf("removed %d old artifacts from %s", len(result.Deleted), result.Dir)
	if result.DryRun {
		msg = fmt.Sprintf("would remove %d old artifacts from %s", len(result.Deleted), result.Dir)
	}

	// Notification errors never fail the build
	_ = notifier.Notify(ctx, notify.Event{
		Type:      notify.EventSweepCompleted,
		RunID:     state.RunID,
		Variant:   state.Variant.String(),
		Task:      TaskCleanOldApks,
		Message:   msg,
		Severity:  severity,
		Timestamp: time.Now(),
		Metadata:  sweepMetadata(result),
	})
}
