// apksweep removes stale APK and checksum files from a Flutter project's
// flutter-apk output directory and runs the Android packaging step after it.
//
// Usage:
//
//	apksweep clean [--dir=<path>] [--dry-run] [--archive]
//	apksweep assemble <debug|release>
//	apksweep usage
//	apksweep archives list|prune|restore
//	apksweep config show|set|unset
//	apksweep tasks
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	logLevel  string
	logFormat string
	configDir string
	project   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "apksweep",
		Short: "Sweep stale APKs before Flutter Android builds",
		Long: "apksweep deletes old .apk and .apk.sha1 files from build/app/outputs/flutter-apk\n" +
			"so a fresh assembleDebug or assembleRelease never leaves a stale package behind.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&opts.configDir, "config-dir", "", "Directory holding the global config.yaml (default ~/.config/apksweep)")
	pf.StringVarP(&opts.project, "project", "C", "", "Flutter project directory (default: current directory)")

	cmd.AddCommand(newCleanCmd(opts))
	cmd.AddCommand(newAssembleCmd(opts))
	cmd.AddCommand(newUsageCmd(opts))
	cmd.AddCommand(newArchivesCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newTasksCmd())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
