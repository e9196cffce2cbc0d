// Package engine provides the usage classifier and cost engine.
// It transforms interval usage records into a cost comparison between
// time-of-use and fixed-rate billing.
package engine

import (
	"github.com/shopspring/decimal"

	"powercost/core/rates"
	"powercost/core/usage"
	"powercost/internal/errors"
)

// Engine classifies usage records and computes billing costs.
// It is pure: one forward pass over the records, running sums per
// bucket, no I/O and no retries.
type Engine struct {
	rates rates.Table
}

// New creates an engine with the given rate schedule
func New(table rates.Table) *Engine {
	return &Engine{rates: table}
}

// Analyze classifies every record into its season/peak bucket,
// aggregates usage, normalizes to kWh and computes cost under both
// billing models.
//
// The declared unit applies to the whole input. Each record's own unit
// must agree with it; a mixed-unit file would silently mis-scale costs,
// so it aborts instead. Zero total usage aborts as well, since the
// percentage of total would be undefined.
func (e *Engine) Analyze(records []usage.Record, declaredUnit string) (*Result, error) {
	sums := make(map[usage.Bucket]float64, len(usage.Buckets))
	total := 0.0
	for i, r := range records {
		if r.Timestamp.IsZero() {
			return nil, errors.Newf(errors.TypeClassification,
				"record %d has no timestamp", i)
		}
		if r.Unit != "" && !usage.SameUnit(r.Unit, declaredUnit) {
			return nil, errors.Newf(errors.TypeUnitAmbiguity,
				"record %d unit %q does not match declared unit %q", i, r.Unit, declaredUnit)
		}
		sums[usage.Classify(r.Timestamp)] += r.Amount
		total += r.Amount
	}

	if total == 0 {
		return nil, errors.EmptyInput("total usage is zero, nothing to analyze")
	}

	factor, err := usage.ConversionFactor(declaredUnit)
	if err != nil {
		return nil, err
	}

	// Percentages come from the pre-normalization sums. The conversion
	// factor cancels in the ratio, so pairing raw with raw avoids any
	// precision drift against the normalized aggregates.
	result := &Result{
		WinterPeakKWh:    sums[usage.WinterPeak] / factor,
		WinterOffPeakKWh: sums[usage.WinterOffPeak] / factor,
		SummerKWh:        sums[usage.SummerAll] / factor,
		TotalKWh:         total / factor,
		WinterPeakPct:    sums[usage.WinterPeak] / total * 100,
		WinterOffPeakPct: sums[usage.WinterOffPeak] / total * 100,
		SummerPct:        sums[usage.SummerAll] / total * 100,
	}

	result.WinterPeakCost = cost(result.WinterPeakKWh, e.rates.WinterPeak)
	result.WinterOffPeakCost = cost(result.WinterOffPeakKWh, e.rates.WinterOffPeak)
	result.SummerCost = cost(result.SummerKWh, e.rates.Summer)
	result.TotalTimeOfUseCost = result.WinterPeakCost.
		Add(result.WinterOffPeakCost).
		Add(result.SummerCost)
	result.TotalFixedRateCost = cost(result.TotalKWh, e.rates.Fixed)

	// Positive savings means time-of-use billing is cheaper. Callers
	// interpret the sign, not the magnitude, to choose the plan.
	result.Savings = result.TotalFixedRateCost.Sub(result.TotalTimeOfUseCost)

	return result, nil
}

// cost multiplies a kWh quantity by a per-kWh rate
func cost(kwh float64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(kwh).Mul(rate)
}
