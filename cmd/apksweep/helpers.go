package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/config"
	devcontext "github.com/randalmurphal/apksweep/context"
	"github.com/randalmurphal/apksweep/logging"
)

// defaultArchiveDir is where archives go when archiving is requested but
// archive_dir is unset, relative to the project root.
const defaultArchiveDir = ".apksweep/archive"

// app is the resolved configuration every command starts from.
type app struct {
	resolver *config.Resolver
	resolved *config.Resolved
	settings config.Settings
	logger   *slog.Logger
}

// loadApp resolves configuration, applying the global flags and any
// command-specific overrides, and initialises logging.
func loadApp(cmd *cobra.Command, opts *rootOptions, overrides map[string]string) *app {
	rc := config.AppResolverConfig()
	rc.StartDir = opts.project
	rc.ErrWriter = cmd.ErrOrStderr()
	if opts.configDir != "" {
		rc.GlobalConfigPath = filepath.Join(opts.configDir, "config.yaml")
	}

	flags := map[string]string{
		config.KeyLogLevel:  opts.logLevel,
		config.KeyLogFormat: opts.logFormat,
	}
	for k, v := range overrides {
		flags[k] = v
	}

	resolver := config.NewResolver(rc)
	resolved := resolver.ResolveWithFlags(flags)
	settings, warnings := config.Load(resolved)

	// Outside a git checkout, anchor relative paths at --project instead.
	if settings.ProjectRoot == "" && opts.project != "" {
		settings.ProjectRoot = opts.project
		settings.OutputDir = anchor(opts.project, settings.OutputDir)
		if settings.ArchiveDir != "" {
			settings.ArchiveDir = anchor(opts.project, settings.ArchiveDir)
		}
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	logging.Init(level, settings.LogFormat, cmd.ErrOrStderr())
	logger := logging.New("apksweep")
	for _, w := range warnings {
		logger.Warn("config", "warning", w)
	}

	return &app{
		resolver: resolver,
		resolved: resolved,
		settings: settings,
		logger:   logger,
	}
}

// services builds the pipeline services from the app's settings.
func (a *app) services() *devcontext.Services {
	return devcontext.NewServices(a.settings, a.logger)
}

// archiveDir returns the configured archive directory, or the default one
// under the project root.
func (a *app) archiveDir() string {
	if a.settings.ArchiveDir != "" {
		return a.settings.ArchiveDir
	}
	return anchor(a.settings.ProjectRoot, defaultArchiveDir)
}

// flagPath makes a path given on the command line absolute. Relative paths
// are taken from --project, else the working directory, never the git root.
func flagPath(opts *rootOptions, path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return path, nil
	}
	if opts.project != "" {
		path = filepath.Join(opts.project, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

func anchor(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func bytesLabel(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
