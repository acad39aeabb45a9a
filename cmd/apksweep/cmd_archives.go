package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/artifact"
)

func newArchivesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archives",
		Short: "List, prune and restore archived sweeps",
	}
	cmd.AddCommand(newArchivesListCmd(opts))
	cmd.AddCommand(newArchivesPruneCmd(opts))
	cmd.AddCommand(newArchivesRestoreCmd(opts))
	return cmd
}

func newArchivesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived sweeps, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := loadApp(cmd, opts, nil)
			archiver := artifact.NewArchiver(a.archiveDir())

			archives, err := archiver.List()
			if err != nil {
				return fmt.Errorf("list archives: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(archives) == 0 {
				fmt.Fprintf(out, "No archives in %s\n", archiver.BaseDir())
				return nil
			}
			for _, arc := range archives {
				fmt.Fprintf(out, "%-22s %10s  %s\n", arc.RunID, bytesLabel(arc.Size), humanize.Time(arc.ModTime))
			}
			return nil
		},
	}
}

type pruneFlags struct {
	days   int
	dryRun bool
}

func newArchivesPruneCmd(opts *rootOptions) *cobra.Command {
	flags := &pruneFlags{}

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete archives older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := loadApp(cmd, opts, nil)
			days := a.settings.ArchiveRetentionDays
			if cmd.Flags().Changed("days") {
				days = flags.days
			}

			result, err := artifact.NewArchiver(a.archiveDir()).Prune(days, flags.dryRun)
			if err != nil {
				return fmt.Errorf("prune archives: %w", err)
			}

			verb := "Pruned"
			if flags.dryRun {
				verb = "Would prune"
			}
			out := cmd.OutOrStdout()
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  failed: %s\n", e)
			}
			fmt.Fprintf(out, "%s %d archives (%s), kept %d\n",
				verb, len(result.Deleted), bytesLabel(result.SpaceSaved), len(result.Kept))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.days, "days", 0, "Retention in days (default: archive_retention_days; 0 keeps everything)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Show what would be pruned")
	return cmd
}

func newArchivesRestoreCmd(opts *rootOptions) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "restore <run-id>",
		Short: "Extract an archived sweep back into the output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := loadApp(cmd, opts, nil)
			dest := a.settings.OutputDir
			if to != "" {
				d, err := flagPath(opts, to)
				if err != nil {
					return err
				}
				dest = d
			}

			restored, err := artifact.NewArchiver(a.archiveDir()).Restore(args[0], dest)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range restored {
				fmt.Fprintf(out, "  restored %s\n", name)
			}
			fmt.Fprintf(out, "Restored %d files to %s\n", len(restored), dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination directory (default: output directory)")
	return cmd
}
