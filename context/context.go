package context

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/runner"
)

// =============================================================================
// Context Injection Helpers
// =============================================================================
// These helpers allow apksweep services to be injected into context.Context
// for use by flowgraph nodes.

// serviceContextKey is a private type for context keys to avoid collisions
type serviceContextKey string

// Context keys for apksweep services
const (
	cleanerServiceKey  serviceContextKey = "apksweep.cleaner"
	archiverServiceKey serviceContextKey = "apksweep.archiver"
	runnerServiceKey   serviceContextKey = "apksweep.runner"
	loggerServiceKey   serviceContextKey = "apksweep.logger"
)

// WithCleaner adds an artifact cleaner to the context
func WithCleaner(ctx context.Context, c *artifact.Cleaner) context.Context {
	return context.WithValue(ctx, cleanerServiceKey, c)
}

// Cleaner extracts the artifact cleaner from context
func Cleaner(ctx context.Context) *artifact.Cleaner {
	if c, ok := ctx.Value(cleanerServiceKey).(*artifact.Cleaner); ok {
		return c
	}
	return nil
}

// MustCleaner extracts the artifact cleaner or panics
func MustCleaner(ctx context.Context) *artifact.Cleaner {
	c := Cleaner(ctx)
	if c == nil {
		panic("apksweep/context: artifact.Cleaner not found in context")
	}
	return c
}

// WithArchiver adds an archiver to the context
func WithArchiver(ctx context.Context, a *artifact.Archiver) context.Context {
	return context.WithValue(ctx, archiverServiceKey, a)
}

// Archiver extracts the archiver from context.
// Returns nil when archiving is disabled.
func Archiver(ctx context.Context) *artifact.Archiver {
	if a, ok := ctx.Value(archiverServiceKey).(*artifact.Archiver); ok {
		return a
	}
	return nil
}

// WithRunner adds a command runner to the context.
// This allows nodes to execute build commands through a mockable interface.
func WithRunner(ctx context.Context, r runner.CommandRunner) context.Context {
	return context.WithValue(ctx, runnerServiceKey, r)
}

// Runner extracts command runner from context.
// Returns nil if not set - callers should fall back to ExecRunner.
func Runner(ctx context.Context) runner.CommandRunner {
	if r, ok := ctx.Value(runnerServiceKey).(runner.CommandRunner); ok {
		return r
	}
	return nil
}

// GetRunner returns the command runner from context, or a default ExecRunner.
// This is the preferred way for nodes to get a runner - it always returns a usable runner.
func GetRunner(ctx context.Context) runner.CommandRunner {
	if r := Runner(ctx); r != nil {
		return r
	}
	return runner.NewExecRunner()
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerServiceKey, logger)
}

// Logger extracts the logger from context, falling back to slog.Default().
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerServiceKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
