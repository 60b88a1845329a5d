package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/shadow-worker/soundgen/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print an annotated sample configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			if ctx.loaded {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", ctx.cfgPath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# defaults (no config file found)")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}
