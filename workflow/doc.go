// Package workflow runs the Android packaging pipeline: sweep stale
// artifacts, assemble the requested variant, notify.
//
// Core types:
//   - Variant: Build variant (debug, release) and its Gradle task name
//   - Task: Entry of the task table; cleanOldApks is a prerequisite of both
//     assemble tasks
//   - State: Pipeline state passed between flowgraph nodes
//   - Pipeline: The compiled sweep → assemble → notify graph
//
// Workflow nodes:
//   - SweepNode: Removes old packages and checksums (best-effort)
//   - AssembleNode: Runs the variant's packaging command
//   - NotifyNode: Sends the completed/failed notification
//
// Example usage:
//
//	services := devcontext.NewServices(settings, logger)
//	state, err := workflow.Run(ctx, services, workflow.VariantRelease)
package workflow
