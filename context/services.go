package context

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/config"
	"github.com/randalmurphal/apksweep/notify"
	"github.com/randalmurphal/apksweep/runner"
)

// Services wraps all apksweep services for convenient initialization
type Services struct {
	Cleaner  *artifact.Cleaner
	Archiver *artifact.Archiver   // Optional, nil when archiving is off
	Runner   runner.CommandRunner // Optional command runner (defaults to ExecRunner)
	Notifier notify.Notifier      // Optional notification service
	Logger   *slog.Logger

	// ProjectRoot is the working directory for packaging commands.
	ProjectRoot string

	// Commands maps a build variant name ("debug", "release") to the argv
	// that packages it.
	Commands map[string][]string
}

// InjectAll adds all configured services to the context
func (s *Services) InjectAll(ctx context.Context) context.Context {
	if s.Cleaner != nil {
		ctx = WithCleaner(ctx, s.Cleaner)
	}
	if s.Archiver != nil {
		ctx = WithArchiver(ctx, s.Archiver)
	}
	if s.Runner != nil {
		ctx = WithRunner(ctx, s.Runner)
	}
	if s.Notifier != nil {
		ctx = notify.WithNotifier(ctx, s.Notifier)
	}
	if s.Logger != nil {
		ctx = WithLogger(ctx, s.Logger)
	}
	return ctx
}

// Command returns the packaging argv for variant, or nil if none is set.
func (s *Services) Command(variant string) []string {
	if s.Commands == nil {
		return nil
	}
	return s.Commands[variant]
}

// NewServices creates Services from resolved settings.
func NewServices(settings config.Settings, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Services{
		Runner:      runner.NewExecRunner(),
		Notifier:    notify.New(logger, settings.WebhookURL, settings.SlackWebhookURL),
		Logger:      logger,
		ProjectRoot: settings.ProjectRoot,
		Commands: map[string][]string{
			"debug":   settings.DebugCommand,
			"release": settings.ReleaseCommand,
		},
	}
	if s.ProjectRoot == "" {
		s.ProjectRoot = "."
	}

	if settings.ArchiveDir != "" {
		s.Archiver = artifact.NewArchiver(settings.ArchiveDir)
	}

	s.Cleaner = artifact.NewCleaner(artifact.Config{
		Dir: settings.OutputDir,
		Classifier: artifact.Classifier{
			PackageSuffixes:  settings.PackageSuffixes,
			ChecksumSuffixes: settings.ChecksumSuffixes,
		},
		DryRun:   settings.DryRun,
		Archiver: s.Archiver,
		Logger:   logger.With("component", "cleaner"),
	})

	return s
}
