package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/apksweep/workflow"
)

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the build tasks and what runs before each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, task := range workflow.Tasks() {
				fmt.Fprintf(out, "%-16s %s\n", task.Name, task.Description)
				if pre := workflow.Prerequisites(task.Name); len(pre) > 0 {
					fmt.Fprintf(out, "%-16s   after: %s\n", "", strings.Join(pre, ", "))
				}
			}
			return nil
		},
	}
}
