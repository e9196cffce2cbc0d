// Package cmd - rates command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"powercost/internal/config"
)

// ratesCmd prints the active rate schedule
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the active rate schedule",
	Long: `Print the rate schedule that analyze would use, in dollars per kWh.
Pass --rates to inspect an alternative schedule file.`,
	RunE: runRates,
}

func init() {
	ratesCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "HCL rate schedule file (default is the built-in schedule)")
}

func runRates(cmd *cobra.Command, args []string) error {
	table, err := loadRates(config.Get())
	if err != nil {
		return err
	}

	fmt.Printf("Rate schedule (%s per kWh):\n", table.Currency)
	fmt.Printf("  Winter Peak (Nov-Mar, 7-11 & 17-21): %s\n", table.WinterPeak.StringFixed(5))
	fmt.Printf("  Winter Off-Peak (Nov-Mar, other times): %s\n", table.WinterOffPeak.StringFixed(5))
	fmt.Printf("  Summer (Apr-Oct, all hours): %s\n", table.Summer.StringFixed(5))
	fmt.Printf("  Fixed (all usage): %s\n", table.Fixed.StringFixed(5))

	return nil
}
