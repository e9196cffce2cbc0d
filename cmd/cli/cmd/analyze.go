// Package cmd - analyze command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"powercost/adapters/meterdata"
	"powercost/core/engine"
	"powercost/core/output"
	"powercost/core/rates"
	"powercost/internal/config"
	"powercost/internal/logging"
)

var (
	ratesFile    string
	outputFormat string
	exportPath   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a usage export and compare billing models",
	Long: `Read a utility interval usage CSV, classify each reading by season and
peak hours, and compare the total cost under time-of-use and fixed-rate
billing.

Examples:
  powercost analyze usage.csv
  powercost analyze --format json usage.csv
  powercost analyze --rates winter-2026.hcl usage.csv
  powercost analyze --export report.pdf usage.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "HCL rate schedule file (default is the built-in schedule)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
	analyzeCmd.Flags().StringVarP(&exportPath, "export", "e", "", "also write the report to a .xlsx or .pdf file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	table, err := loadRates(cfg)
	if err != nil {
		return err
	}

	doc, err := meterdata.ReadFile(args[0])
	if err != nil {
		return err
	}
	logging.Debug("usage file loaded",
		zap.String("path", args[0]),
		zap.Int("records", len(doc.Records)))

	result, err := engine.New(table).Analyze(doc.Records, doc.Unit)
	if err != nil {
		return err
	}

	report := &output.Report{
		Result:   result,
		Rates:    table,
		Metadata: doc.Metadata,
	}

	format := output.Format(outputFormat)
	if format == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if text, ok := formatter.(*output.TextFormatter); ok {
		text.ShowAccountInfo = cfg.Output.ShowAccountInfo
	}

	if err := formatter.Render(os.Stdout, report); err != nil {
		return err
	}

	if exportPath != "" {
		if err := output.Export(exportPath, report); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", exportPath)
	}

	return nil
}

// loadRates resolves the active rate schedule: the --rates flag wins,
// then the config file's rates_file, then the built-in schedule.
func loadRates(cfg *config.Config) (rates.Table, error) {
	path := ratesFile
	if path == "" {
		path = cfg.RatesFile
	}
	if path == "" {
		return rates.Default(), nil
	}
	return rates.Load(path)
}
