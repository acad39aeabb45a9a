package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/config"
	"github.com/randalmurphal/apksweep/runner"
	"github.com/randalmurphal/apksweep/workflow"
)

type assembleFlags struct {
	dryRun bool
	quiet  bool
}

func newAssembleCmd(opts *rootOptions) *cobra.Command {
	flags := &assembleFlags{}

	cmd := &cobra.Command{
		Use:   "assemble <debug|release>",
		Short: "Sweep old APKs, then package the given variant",
		Long: "Runs cleanOldApks and then the packaging command for the variant\n" +
			"(debug_command or release_command, default flutter build apk --<variant>).",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(workflow.VariantDebug), string(workflow.VariantRelease)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, opts, flags, args[0])
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.dryRun, "dry-run", false, "Report stale files instead of deleting them")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not stream the build output")
	return cmd
}

func runAssemble(cmd *cobra.Command, opts *rootOptions, flags *assembleFlags, arg string) error {
	variant, err := workflow.ParseVariant(arg)
	if err != nil {
		return err
	}

	overrides := map[string]string{}
	if flags.dryRun {
		overrides[config.KeyDryRun] = "true"
	}
	a := loadApp(cmd, opts, overrides)

	services := a.services()
	if !flags.quiet {
		services.Runner = runner.NewExecRunner().WithOutput(cmd.OutOrStdout())
	}

	out := cmd.OutOrStdout()
	state, err := workflow.Run(cmd.Context(), services, variant)
	if state.Sweep != nil {
		fmt.Fprintf(out, "%s: removed %d APKs and %d checksums (%s)\n",
			workflow.TaskCleanOldApks,
			state.Sweep.Count(artifact.KindPackage),
			state.Sweep.Count(artifact.KindChecksum),
			bytesLabel(state.Sweep.SpaceSaved))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s finished in %s\n", state.Task, state.AssembleDuration.Round(time.Millisecond))
	return nil
}
