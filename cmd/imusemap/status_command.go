package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imusemap/internal/deps"
	"imusemap/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report external dependencies and directory access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := preflight.CheckSystemDeps(cfg)
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				rows = append(rows, []string{status.Name, status.Command, availability(status), status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Dependency", "Command", "Available", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			checks := preflight.RunAll(cfg)
			rows = rows[:0]
			for _, check := range checks {
				rows = append(rows, []string{check.Name, passed(check.Passed), check.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "Passed", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if missing, ok := deps.FirstMissing(statuses); ok {
				return fmt.Errorf("missing required dependency: %s (%s)", missing.Name, missing.Detail)
			}
			return nil
		},
	}
}

func availability(status deps.Status) string {
	if status.Available {
		return "yes"
	}
	if status.Optional {
		return "no (optional)"
	}
	return "no"
}

func passed(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
