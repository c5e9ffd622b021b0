package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"imusemap/internal/config"
	"imusemap/internal/musicmap"
	"imusemap/internal/scan"
	"imusemap/internal/workflow"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var showMap bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Probe one audio file and print its segment plan without writing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", path)
				}
				return fmt.Errorf("inspect file: %w", err)
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			runner := workflow.New(cfg, logger, nil)
			p, plan, err := runner.EvaluateFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			track := scan.TrackName(path)

			if showMap {
				fmt.Fprint(cmd.OutOrStdout(), musicmap.Build(track, plan).Render())
				return nil
			}

			if asJSON {
				payload := map[string]any{
					"track":           track,
					"sampleRate":      p.SampleRate,
					"bitsPerSample":   p.BitsPerSample,
					"channels":        p.Channels,
					"durationSamples": p.DurationSamples,
					"durationSeconds": p.DurationSeconds,
					"bytesPerSecond":  p.BytesPerSecond(),
					"dataSizeBytes":   p.DataSizeBytes(),
					"intro":           plan.Intro,
					"loop":            plan.Loop,
					"outro":           plan.Outro,
					"stop":            plan.Stop(),
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			rows := [][]string{
				{"Track", track},
				{"Sample rate", fmt.Sprintf("%d Hz", p.SampleRate)},
				{"Bit depth", strconv.Itoa(p.BitsPerSample)},
				{"Channels", strconv.Itoa(p.Channels)},
				{"Duration", fmt.Sprintf("%.3f s (%d samples)", p.DurationSeconds, p.DurationSamples)},
				{"Byte rate", fmt.Sprintf("%d B/s", p.BytesPerSecond())},
				{"Data size", strconv.FormatInt(p.DataSizeBytes(), 10)},
				{"Intro", formatRegion(plan.Intro.Start, plan.Intro.Length)},
				{"Loop", formatRegion(plan.Loop.Start, plan.Loop.Length)},
				{"Outro", formatRegion(plan.Outro.Start, plan.Outro.Length)},
				{"Stop", strconv.FormatInt(plan.Stop(), 10)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	cmd.Flags().BoolVar(&showMap, "map", false, "Print the map document instead of a summary")
	return cmd
}

func formatRegion(start, length int64) string {
	return fmt.Sprintf("%d (+%d)", start, length)
}
