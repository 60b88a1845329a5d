package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shadow-worker/soundgen/pkg/audio/decode"
	"github.com/shadow-worker/soundgen/pkg/audio/synth"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.wav>...",
		Short: "Show format, length, and peak level of WAV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			var errs []error
			for _, path := range args {
				buf, info, err := decode.WAVFile(path)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				peak := synth.Peak(buf)
				rows = append(rows, []string{
					path,
					fmt.Sprintf("%d Hz / %d ch / %d bit", info.Format.SampleRate, info.Format.Channels, info.Format.BitDepth),
					fmt.Sprintf("%d", info.Frames),
					info.Duration.Round(time.Millisecond).String(),
					fmt.Sprintf("%.4f", peak),
					formatDBFS(peak),
				})
			}
			if len(rows) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
					{title: "File"},
					{title: "Format"},
					{title: "Frames", right: true},
					{title: "Duration", right: true},
					{title: "Peak", right: true},
					{title: "dBFS", right: true},
				}, rows))
			}
			return errors.Join(errs...)
		},
	}
}

func formatDBFS(peak float64) string {
	if peak <= 0 {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", 20*math.Log10(peak))
}
