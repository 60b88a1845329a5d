package main

import (
	"github.com/shadow-worker/soundgen/internal/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "soundgen",
		Short:         "Procedural sound effect generator",
		Long:          "soundgen renders the game's sound effects from sine oscillators and writes them as 16-bit mono WAV files.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default ./soundgen.toml when present)")
	flags.StringVar(&ctx.logFileFlag, "log-file", "", "Log file path (overrides log_file from the config)")
	flags.BoolVar(&ctx.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
