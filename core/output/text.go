package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TextFormatter renders the classic console report. Currency amounts
// are rounded to two decimal places and percentages to one; rounding
// happens only here, never in the engine.
type TextFormatter struct {
	// ShowAccountInfo includes the account metadata block
	ShowAccountInfo bool
}

// Format returns the format type
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the report to w
func (f *TextFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder
	rule := strings.Repeat("-", 60)

	if f.ShowAccountInfo && len(report.Metadata) > 0 {
		b.WriteString("\nAccount Information:\n")
		b.WriteString(rule + "\n")
		for _, key := range []string{"Name", "Address", "Account Number"} {
			if value, ok := report.Metadata[key]; ok {
				fmt.Fprintf(&b, "%s: %s\n", key, value)
			}
		}
	}

	r := report.Result
	b.WriteString("\nPower Usage Analysis Results:\n")
	b.WriteString(rule + "\n")
	b.WriteString("Usage Breakdown:\n")
	fmt.Fprintf(&b, "Winter Peak Hours (Nov-Mar, 7-11 & 17-21): %s kWh (%.1f%%)\n",
		kwh(r.WinterPeakKWh), r.WinterPeakPct)
	fmt.Fprintf(&b, "Winter Off-Peak Hours (Nov-Mar, other times): %s kWh (%.1f%%)\n",
		kwh(r.WinterOffPeakKWh), r.WinterOffPeakPct)
	fmt.Fprintf(&b, "Summer Usage (Apr-Oct, all hours): %s kWh (%.1f%%)\n",
		kwh(r.SummerKWh), r.SummerPct)
	fmt.Fprintf(&b, "Total Usage: %s kWh\n", kwh(r.TotalKWh))

	b.WriteString("\nCost Analysis:\n")
	b.WriteString(rule + "\n")
	b.WriteString("Time-of-Use Rate Breakdown:\n")
	fmt.Fprintf(&b, "Winter Peak Hours ($%s/kWh): $%s\n",
		report.Rates.WinterPeak.StringFixed(5), r.WinterPeakCost.StringFixed(2))
	fmt.Fprintf(&b, "Winter Off-Peak Hours ($%s/kWh): $%s\n",
		report.Rates.WinterOffPeak.StringFixed(5), r.WinterOffPeakCost.StringFixed(2))
	fmt.Fprintf(&b, "Summer Usage ($%s/kWh): $%s\n",
		report.Rates.Summer.StringFixed(5), r.SummerCost.StringFixed(2))
	fmt.Fprintf(&b, "Total Time-of-Use Cost: $%s\n", r.TotalTimeOfUseCost.StringFixed(2))

	fmt.Fprintf(&b, "\nFixed Rate Cost ($%s/kWh): $%s\n",
		report.Rates.Fixed.StringFixed(5), r.TotalFixedRateCost.StringFixed(2))

	if r.Savings.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "\nTime-of-Use billing would save you: $%s\n", r.Savings.Abs().StringFixed(2))
	} else {
		fmt.Fprintf(&b, "\nFixed rate billing would save you: $%s\n", r.Savings.Abs().StringFixed(2))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// kwh formats a kWh quantity with a thousands separator and two
// decimal places
func kwh(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
