// Package cli provides the command-line interface for mapramp.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/config"
	"github.com/jmylchreest/mapramp/internal/logging"
	"github.com/jmylchreest/mapramp/internal/version"
)

var (
	// Global flags
	globalVerbose bool
	globalConfig  string
	globalColour  string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mapramp",
		Short: "Colour scales and legends for map features",
		Long: `mapramp maps numeric feature values onto colour ramps the way a map view
tints its markers and lines, and renders the matching legend.

Markers take their colour from a seven-stop blue to red scale and turn
darkred above 1. Lines use a green to red scale and turn red above 1.
Anything else is drawn grey.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&globalColour, "colour", colourAuto, "colour output (auto, always, never)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return configureColour(globalColour, cmd.OutOrStdout())
	}

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(colorizeCmd)
}

// newLogger returns the logger for a command run.
func newLogger(cmd *cobra.Command) hclog.Logger {
	return logging.New(globalVerbose, cmd.ErrOrStderr())
}

// loadConfig builds the configuration from defaults, the --config file and
// the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewBuilder().
		WithFile(globalConfig).
		WithEnvConfig().
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
