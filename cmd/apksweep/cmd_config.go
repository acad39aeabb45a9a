package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/config"
	apperrors "github.com/randalmurphal/apksweep/errors"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
	}
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigSetCmd(opts))
	cmd.AddCommand(newConfigUnsetCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every key with its value and source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := loadApp(cmd, opts, nil)

			out := cmd.OutOrStdout()
			for _, key := range config.KnownKeys() {
				value, source := a.resolved.GetWithSource(key)
				if value == "" {
					value = "-"
				}
				fmt.Fprintf(out, "%-24s %-36s (%s)\n", key, value, source)
			}
			if p := a.resolver.GlobalPath(); p != "" {
				fmt.Fprintf(out, "\nglobal: %s\n", p)
			}
			if p := a.resolver.LocalPath(); p != "" {
				fmt.Fprintf(out, "local:  %s\n", p)
			}
			return nil
		},
	}
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a key to the project or global config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := loadApp(cmd, opts, nil)
			save := saveConfig(opts)

			key, value := args[0], args[1]
			if global {
				if err := save.SaveGlobal(key, value); err != nil {
					return err
				}
			} else {
				if a.resolver.GitRoot() == "" {
					return apperrors.NewNotInGitRepoError()
				}
				if err := save.SaveLocal(a.resolver.GitRoot(), key, value); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write to the global config instead of .apksweep.yaml")
	return cmd
}

func newConfigUnsetCmd(opts *rootOptions) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key from the project or global config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := loadApp(cmd, opts, nil)
			save := saveConfig(opts)

			if global {
				return save.DeleteGlobalKey(args[0])
			}
			if a.resolver.GitRoot() == "" {
				return apperrors.NewNotInGitRepoError()
			}
			return save.DeleteLocalKey(a.resolver.GitRoot(), args[0])
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Remove from the global config instead of .apksweep.yaml")
	return cmd
}

func saveConfig(opts *rootOptions) config.SaveConfig {
	save := config.AppSaveConfig()
	if opts.configDir != "" {
		save.GlobalConfigPath = filepath.Join(opts.configDir, "config.yaml")
	}
	return save
}
