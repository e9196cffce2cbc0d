// Package cmd provides the CLI commands for powercost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"powercost/internal/config"
	"powercost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "powercost",
	Short: "Compare time-of-use and fixed-rate electricity billing",
	Long: `powercost analyzes a utility-exported interval usage CSV and compares
what the usage would cost under time-of-use billing versus a flat rate.

Readings are classified by season and hour: November through March splits
into peak (7-11 and 17-21) and off-peak, April through October is priced
at a single summer rate.

Examples:
  powercost analyze usage.csv
  powercost analyze --format json usage.csv
  powercost analyze --rates my-rates.hcl --export report.xlsx usage.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./powercost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = "powercost.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("powercost version 0.1.0")
	},
}
