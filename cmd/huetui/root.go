package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	serverURL  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "huetui",
		Short:         "Huetui builds room color palettes from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the interactive studio.
			return runStudio(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.serverURL, "server", "", "Palette service URL (overrides configuration)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
