package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imusemap/internal/config"
	"imusemap/internal/workflow"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate .imp maps for every audio file in a directory",
		Long: `Generate scans a directory (the configured input directory by default),
probes each audio file, computes intro/loop/outro regions, and writes one
.imp map per track. Files that cannot be processed are reported and
skipped; the batch continues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				expanded, err := config.ExpandPath(outputDir)
				if err != nil {
					return err
				}
				cfg.Paths.OutputDir = expanded
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			var inputDir string
			if len(args) == 1 {
				if inputDir, err = config.ExpandPath(args[0]); err != nil {
					return err
				}
			}

			store := ctx.openJournal(logger)
			defer store.Close()

			runner := workflow.New(cfg, logger, store)
			summary, err := runner.Run(cmd.Context(), workflow.Options{
				InputDir: inputDir,
				Force:    force,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d file(s): %d generated, %d skipped, %d failed\n",
				len(summary.Results), summary.Generated, summary.Skipped, summary.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate maps even when they are up to date")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Write maps into this directory instead of beside the inputs")
	return cmd
}
