package commands

import (
	"os"
	"time"

	"github.com/portsweep/portsweep/internal/config"
	"github.com/portsweep/portsweep/internal/logger"
	"github.com/portsweep/portsweep/internal/probe"
	"github.com/portsweep/portsweep/internal/reporter"
	"github.com/portsweep/portsweep/internal/resolve"
	"github.com/portsweep/portsweep/internal/scanner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/**
 * Command to scan a target's ports. Flags override the scan profile
 * from the user config file.
 */
func scan() *cobra.Command {
	var minPort int
	var maxPort int
	var timeout time.Duration
	var showClosed bool

	cmd := &cobra.Command{
		Use:   "scan [target]",
		Short: "Scan a target host for open TCP ports",
		Long: "Scan a target host for open TCP ports. The target may be " +
			"a hostname, an IP address, or a CIDR block. Ports 100 and " +
			"below are additionally probed for service identification.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			setScanLogOutput(log)

			target := args[0]

			conf := loadScanProfile()

			if !cmd.Flags().Changed("min") {
				minPort = conf.Scan.MinPort
			}

			if !cmd.Flags().Changed("max") {
				maxPort = conf.Scan.MaxPort
			}

			if !cmd.Flags().Changed("timeout") {
				timeout = conf.ConnectTimeout()
			}

			if !cmd.Flags().Changed("show-closed") {
				showClosed = conf.Scan.ShowClosed
			}

			console := reporter.NewConsole(cmd.OutOrStdout())

			targets, err := resolve.Targets(target)

			if err != nil {
				// a resolution failure ends the run cleanly before any
				// scanning starts
				log.Error().Err(err).Msg("target resolution failed")
				console.Unresolved(target)
				return nil
			}

			opts := []scanner.Option{}

			if showClosed {
				opts = append(opts, scanner.WithShowClosed())
			}

			checker := scanner.NewChecker(probe.New(timeout), timeout)
			coordinator := scanner.NewCoordinator(checker, opts...)

			if len(targets) == 1 {
				console.Resolved(target, targets[0])
			}

			for _, ip := range targets {
				console.ScanHeader(ip, minPort, maxPort)

				resultChan := make(chan *scanner.Result)
				done := make(chan struct{})

				go func() {
					console.Stream(resultChan)
					close(done)
				}()

				err := coordinator.Scan(cmd.Context(), ip, minPort, maxPort, resultChan)

				close(resultChan)
				<-done

				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&minPort, "min", 1, "Minimum port number to scan")
	cmd.Flags().IntVar(&maxPort, "max", 65535, "Maximum port number to scan")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Second, "Per-connection timeout")
	cmd.Flags().BoolVar(&showClosed, "show-closed", false, "Also report closed ports")

	return cmd
}

// setScanLogOutput redirects diagnostics to the configured log file so
// the terminal carries only the result stream. Logging is disabled when
// no log file can be used.
func setScanLogOutput(log logger.Logger) {
	level := zerolog.GlobalLevel()

	if level == zerolog.Disabled {
		return
	}

	logFile, ok := viper.Get("log-file").(string)

	if !ok || logFile == "" {
		log.Info().Msg("disabling logs")
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}

	if err := logger.GlobalSetLogFile(logFile); err != nil {
		log.Error().Err(err).Msg("invalid log file path")
		log.Info().Msg("disabling logs")
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
}

// loadScanProfile returns the user's configured scan profile, creating
// a default config file on first run
func loadScanProfile() *config.Config {
	log := logger.New()

	configFile, ok := viper.Get("config-file").(string)

	if !ok || configFile == "" {
		return config.Default()
	}

	conf, err := config.New(configFile)

	if err != nil {
		conf = config.Default()

		if os.IsNotExist(err) {
			if writeErr := config.Write(*conf); writeErr != nil {
				log.Debug().Err(writeErr).Msg("failed to write default config")
			}
		}
	}

	return conf
}
