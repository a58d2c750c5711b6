package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Root builds and returns our root command
func Root() *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:   "portsweep",
		Short: "A concurrent TCP port scanner",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.AddCommand(scan())
	cmd.AddCommand(version())
	cmd.AddCommand(clear())

	return cmd
}
