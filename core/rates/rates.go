// Package rates provides billing rate schedules.
// A schedule maps each usage bucket to a price per kWh, plus the flat
// rate used for fixed-rate billing. The engine takes a Table by value,
// so alternative schedules can be injected without any global state.
package rates

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"powercost/core/usage"
	"powercost/internal/errors"
)

// Table is a rate schedule in dollars per kWh
type Table struct {
	// WinterPeak is the time-of-use rate for winter peak hours
	WinterPeak decimal.Decimal `json:"winter_peak"`

	// WinterOffPeak is the time-of-use rate for winter off-peak hours
	WinterOffPeak decimal.Decimal `json:"winter_off_peak"`

	// Summer is the time-of-use rate for April through October
	Summer decimal.Decimal `json:"summer"`

	// Fixed is the flat rate applied to all usage under fixed-rate billing
	Fixed decimal.Decimal `json:"fixed"`

	// Currency is the currency code for all rates
	Currency string `json:"currency"`
}

// Default returns the standard residential schedule
func Default() Table {
	return Table{
		WinterPeak:    decimal.RequireFromString("0.34634"),
		WinterOffPeak: decimal.RequireFromString("0.17703"),
		Summer:        decimal.RequireFromString("0.12198"),
		Fixed:         decimal.RequireFromString("0.17703"),
		Currency:      "USD",
	}
}

// ForBucket returns the time-of-use rate for a bucket
func (t Table) ForBucket(b usage.Bucket) decimal.Decimal {
	switch b {
	case usage.WinterPeak:
		return t.WinterPeak
	case usage.WinterOffPeak:
		return t.WinterOffPeak
	default:
		return t.Summer
	}
}

// fileSchema is the HCL shape of a rate schedule file
type fileSchema struct {
	WinterPeak    string  `hcl:"winter_peak"`
	WinterOffPeak string  `hcl:"winter_off_peak"`
	Summer        string  `hcl:"summer"`
	Fixed         string  `hcl:"fixed"`
	Currency      *string `hcl:"currency,optional"`
}

// Load reads an alternative rate schedule from an HCL file.
// All four rates are required and must be non-negative decimal strings,
// e.g. winter_peak = "0.34634".
func Load(path string) (Table, error) {
	var spec fileSchema
	if err := hclsimple.DecodeFile(path, nil, &spec); err != nil {
		return Table{}, errors.Wrap(errors.TypeConfig, "parsing rate schedule", err)
	}

	table := Table{Currency: "USD"}
	if spec.Currency != nil {
		table.Currency = *spec.Currency
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"winter_peak", spec.WinterPeak, &table.WinterPeak},
		{"winter_off_peak", spec.WinterOffPeak, &table.WinterOffPeak},
		{"summer", spec.Summer, &table.Summer},
		{"fixed", spec.Fixed, &table.Fixed},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return Table{}, errors.Wrapf(errors.TypeConfig, err, "rate schedule: invalid %s", f.name)
		}
		if d.IsNegative() {
			return Table{}, errors.Newf(errors.TypeConfig, "rate schedule: %s must not be negative", f.name)
		}
		*f.dst = d
	}

	return table, nil
}
