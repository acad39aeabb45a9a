package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/config"
	apperrors "github.com/randalmurphal/apksweep/errors"
)

type cleanFlags struct {
	dir     string
	dryRun  bool
	archive bool
	json    bool
}

func newCleanCmd(opts *rootOptions) *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete old APK and checksum files from the output directory",
		Long: "Deletes every regular file ending in .apk or .apk.sha1 directly inside the\n" +
			"output directory. A missing directory is not an error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd, opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.dir, "dir", "", "Output directory (default: build/app/outputs/flutter-apk)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "List what would be deleted without deleting")
	f.BoolVar(&flags.archive, "archive", false, "Archive files before deleting them")
	f.BoolVar(&flags.json, "json", false, "Print the result as JSON")
	return cmd
}

func runClean(cmd *cobra.Command, opts *rootOptions, flags *cleanFlags) error {
	dir, err := flagPath(opts, flags.dir)
	if err != nil {
		return err
	}
	overrides := map[string]string{config.KeyOutputDir: dir}
	if flags.dryRun {
		overrides[config.KeyDryRun] = "true"
	}
	a := loadApp(cmd, opts, overrides)
	if flags.archive && a.settings.ArchiveDir == "" {
		a.settings.ArchiveDir = a.archiveDir()
	}

	services := a.services()
	result, err := services.Cleaner.Clean(cmd.Context())
	if err != nil {
		return apperrors.WrapOutputDirError(err, services.Cleaner.Dir())
	}

	out := cmd.OutOrStdout()
	if flags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printCleanup(out, result)
	return nil
}

func printCleanup(out io.Writer, result *artifact.CleanupResult) {
	verb, summary := "deleted", "Deleted"
	if result.DryRun {
		verb, summary = "would delete", "Would delete"
	}

	if len(result.Deleted) == 0 && len(result.Errors) == 0 {
		fmt.Fprintf(out, "Nothing to clean in %s\n", result.Dir)
		return
	}

	for _, a := range result.Deleted {
		fmt.Fprintf(out, "  %s %s (%s)\n", verb, a.Name, bytesLabel(a.Size))
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  failed: %s\n", e)
	}

	fmt.Fprintf(out, "%s %d APKs and %d checksums, %s\n",
		summary,
		result.Count(artifact.KindPackage),
		result.Count(artifact.KindChecksum),
		bytesLabel(result.SpaceSaved))
	if result.ArchiveID != "" {
		fmt.Fprintf(out, "Archived as %s\n", result.ArchiveID)
	}
}
