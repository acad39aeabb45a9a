package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/artifact"
)

func newUsageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show how much space stale artifacts and archives take",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUsage(cmd, opts)
		},
	}
}

func runUsage(cmd *cobra.Command, opts *rootOptions) error {
	a := loadApp(cmd, opts, nil)

	classifier := artifact.Classifier{
		PackageSuffixes:  a.settings.PackageSuffixes,
		ChecksumSuffixes: a.settings.ChecksumSuffixes,
	}
	archiver := artifact.NewArchiver(a.archiveDir())

	stats, err := artifact.DiskUsage(a.settings.OutputDir, classifier, archiver)
	if err != nil {
		return fmt.Errorf("disk usage: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Output:      %s\n", a.settings.OutputDir)
	fmt.Fprintf(out, "  APKs:      %d (%s)\n", stats.PackageCount, bytesLabel(stats.PackageSize))
	fmt.Fprintf(out, "  Checksums: %d (%s)\n", stats.ChecksumCount, bytesLabel(stats.ChecksumSize))
	fmt.Fprintf(out, "  Other:     %d\n", stats.OtherCount)
	fmt.Fprintf(out, "Reclaimable: %s\n", bytesLabel(stats.Reclaimable()))
	fmt.Fprintf(out, "Archives:    %d (%s) in %s\n", stats.ArchiveCount, bytesLabel(stats.ArchiveSize), archiver.BaseDir())
	return nil
}
