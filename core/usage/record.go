// Package usage provides interval usage records and their season/peak
// classification.
package usage

import (
	"strings"
	"time"

	"powercost/internal/errors"
)

// Record is a single interval meter reading. Records are immutable once
// parsed; the ingestion adapter produces one per source row.
type Record struct {
	// Timestamp is the start of the reading interval (naive local time)
	Timestamp time.Time `json:"timestamp"`

	// Amount is the energy reading in the declared unit
	Amount float64 `json:"amount"`

	// Unit is the unit the reading was reported in (e.g. "kWh", "Wh")
	Unit string `json:"unit"`
}

// ConversionFactor returns the divisor that converts readings in the
// given unit to kWh. Only kWh and Wh are recognized; anything else is
// a unit ambiguity error rather than a silent kWh assumption.
func ConversionFactor(unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kwh":
		return 1, nil
	case "wh":
		return 1000, nil
	default:
		return 0, errors.UnitAmbiguity(unit)
	}
}

// SameUnit reports whether two unit strings denote the same unit,
// ignoring case and surrounding whitespace.
func SameUnit(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
