package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/convert"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool

	// Shared state prepared before every command run.
	cfg    convert.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ena2linkml",
	Short: "Convert ENA sample checklists to DataHarmonizer LinkML schemas",
	Long: `ena2linkml derives LinkML schema files from ENA checklist definitions.

Each checklist XML document becomes one <accession>.yaml schema whose
slots, enums and column ordering mirror the checklist's fields, field
groups and document order.

Quick start:
  ena2linkml convert                  # Convert every XML file in the input directory
  ena2linkml convert ERC000024.xml    # Convert specific files
  ena2linkml inspect ERC000024.xml    # Summarize a checklist without converting
  ena2linkml watch                    # Re-convert checklists as they change`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")
}

// setup prepares the logger and configuration every command relies on.
// Flag values set on the invoked command override config-file values,
// which override defaults.
func setup(cmd *cobra.Command, args []string) error {
	logger = newLogger()

	cfg = convert.DefaultConfig()

	if cfgFile != "" {
		loaded, err := convert.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if quiet {
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
