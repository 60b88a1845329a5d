package main

import (
	"fmt"
	"strings"

	"github.com/shadow-worker/soundgen/pkg/sounds"
	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available sound recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecipes(cfg.Library()))
			return nil
		},
	}
}

func renderRecipes(recipes []sounds.Recipe) string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			r.Name,
			formatLayers(r.Layers),
			fmt.Sprintf("%.2fs", r.Duration),
			r.Describe(),
			r.OutputPath(""),
		})
	}
	return renderTable(
		[]column{{title: "Name"}, {title: "Layers"}, {title: "Duration", right: true}, {title: "Post"}, {title: "Path"}},
		rows,
	)
}

func formatLayers(layers []sounds.Layer) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = fmt.Sprintf("%gHz@%g", l.Frequency, l.Amplitude)
	}
	return strings.Join(parts, " + ")
}
