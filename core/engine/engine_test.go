package engine

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"powercost/core/rates"
	"powercost/core/usage"
	"powercost/internal/errors"
)

func record(month time.Month, day, hour int, amount float64, unit string) usage.Record {
	return usage.Record{
		Timestamp: time.Date(2025, month, day, hour, 0, 0, 0, time.Local),
		Amount:    amount,
		Unit:      unit,
	}
}

// scenarioRecords is the worked example: one winter peak, one winter
// off-peak and one summer reading.
func scenarioRecords(unit string, scale float64) []usage.Record {
	return []usage.Record{
		record(time.November, 15, 8, 2.0*scale, unit),
		record(time.November, 15, 14, 1.0*scale, unit),
		record(time.June, 1, 12, 3.0*scale, unit),
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestAnalyzeScenario(t *testing.T) {
	result, err := New(rates.Default()).Analyze(scenarioRecords("kWh", 1), "kWh")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.WinterPeakKWh != 2.0 || result.WinterOffPeakKWh != 1.0 || result.SummerKWh != 3.0 {
		t.Errorf("bucket usage = %v/%v/%v, want 2/1/3",
			result.WinterPeakKWh, result.WinterOffPeakKWh, result.SummerKWh)
	}
	if result.TotalKWh != 6.0 {
		t.Errorf("TotalKWh = %v, want 6", result.TotalKWh)
	}

	assertDecimal(t, "WinterPeakCost", result.WinterPeakCost, "0.69268")
	assertDecimal(t, "WinterOffPeakCost", result.WinterOffPeakCost, "0.17703")
	assertDecimal(t, "SummerCost", result.SummerCost, "0.36594")
	assertDecimal(t, "TotalTimeOfUseCost", result.TotalTimeOfUseCost, "1.23565")
	assertDecimal(t, "TotalFixedRateCost", result.TotalFixedRateCost, "1.06218")
	assertDecimal(t, "Savings", result.Savings, "-0.17347")

	// Fixed rate is cheaper in this scenario
	if !result.Savings.IsNegative() {
		t.Errorf("Savings = %s, want negative", result.Savings)
	}
}

func TestAnalyzePartitionCompleteness(t *testing.T) {
	result, err := New(rates.Default()).Analyze(scenarioRecords("kWh", 1), "kWh")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	sum := result.WinterPeakKWh + result.WinterOffPeakKWh + result.SummerKWh
	if sum != result.TotalKWh {
		t.Errorf("bucket sum %v != total %v", sum, result.TotalKWh)
	}
}

func TestAnalyzePercentagesSumTo100(t *testing.T) {
	records := []usage.Record{
		record(time.January, 3, 9, 1.7, "kWh"),
		record(time.February, 11, 23, 0.3, "kWh"),
		record(time.May, 20, 15, 2.9, "kWh"),
		record(time.December, 24, 19, 0.45, "kWh"),
	}

	result, err := New(rates.Default()).Analyze(records, "kWh")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	sum := result.WinterPeakPct + result.WinterOffPeakPct + result.SummerPct
	if math.Abs(sum-100.0) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestAnalyzeWhNormalization(t *testing.T) {
	eng := New(rates.Default())

	fromKWh, err := eng.Analyze(scenarioRecords("kWh", 1), "kWh")
	if err != nil {
		t.Fatalf("Analyze kWh failed: %v", err)
	}
	fromWh, err := eng.Analyze(scenarioRecords("Wh", 1000), "Wh")
	if err != nil {
		t.Fatalf("Analyze Wh failed: %v", err)
	}

	if fromWh.TotalKWh != fromKWh.TotalKWh {
		t.Errorf("TotalKWh from Wh input = %v, want %v", fromWh.TotalKWh, fromKWh.TotalKWh)
	}
	if !fromWh.TotalTimeOfUseCost.Equal(fromKWh.TotalTimeOfUseCost) {
		t.Errorf("TOU cost from Wh input = %s, want %s",
			fromWh.TotalTimeOfUseCost, fromKWh.TotalTimeOfUseCost)
	}
	if !fromWh.Savings.Equal(fromKWh.Savings) {
		t.Errorf("savings from Wh input = %s, want %s", fromWh.Savings, fromKWh.Savings)
	}
	if fromWh.WinterPeakPct != fromKWh.WinterPeakPct {
		t.Errorf("percentage from Wh input = %v, want %v",
			fromWh.WinterPeakPct, fromKWh.WinterPeakPct)
	}
}

func TestAnalyzeSavingsSign(t *testing.T) {
	// All summer usage: TOU (0.12198) beats the flat rate (0.17703)
	records := []usage.Record{
		record(time.July, 1, 12, 10.0, "kWh"),
	}

	result, err := New(rates.Default()).Analyze(records, "kWh")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !result.Savings.IsPositive() {
		t.Errorf("Savings = %s, want positive for all-summer usage", result.Savings)
	}
	want := result.TotalFixedRateCost.Sub(result.TotalTimeOfUseCost)
	if !result.Savings.Equal(want) {
		t.Errorf("Savings = %s, want fixed-TOU = %s", result.Savings, want)
	}
}

func TestAnalyzeAlternativeRateSchedule(t *testing.T) {
	flat := mustDecimal(t, "0.10")
	table := rates.Table{
		WinterPeak:    flat,
		WinterOffPeak: flat,
		Summer:        flat,
		Fixed:         flat,
		Currency:      "USD",
	}

	result, err := New(table).Analyze(scenarioRecords("kWh", 1), "kWh")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// Identical rates on both plans cancel out
	if !result.Savings.IsZero() {
		t.Errorf("Savings = %s, want zero for identical rates", result.Savings)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	eng := New(rates.Default())

	_, err := eng.Analyze(nil, "kWh")
	if !errors.IsType(err, errors.TypeEmptyInput) {
		t.Errorf("Analyze(nil) error = %v, want %s", err, errors.TypeEmptyInput)
	}

	// Zero-valued readings are just as undefined as no readings
	zeros := []usage.Record{
		record(time.November, 15, 8, 0, "kWh"),
		record(time.June, 1, 12, 0, "kWh"),
	}
	_, err = eng.Analyze(zeros, "kWh")
	if !errors.IsType(err, errors.TypeEmptyInput) {
		t.Errorf("Analyze(zero usage) error = %v, want %s", err, errors.TypeEmptyInput)
	}
}

func TestAnalyzeUnrecognizedUnit(t *testing.T) {
	_, err := New(rates.Default()).Analyze(scenarioRecords("MWh", 1), "MWh")
	if !errors.IsType(err, errors.TypeUnitAmbiguity) {
		t.Errorf("Analyze(MWh) error = %v, want %s", err, errors.TypeUnitAmbiguity)
	}
}

func TestAnalyzeMixedUnits(t *testing.T) {
	records := []usage.Record{
		record(time.November, 15, 8, 2.0, "kWh"),
		record(time.November, 15, 14, 1000.0, "Wh"),
	}

	_, err := New(rates.Default()).Analyze(records, "kWh")
	if !errors.IsType(err, errors.TypeUnitAmbiguity) {
		t.Errorf("Analyze(mixed units) error = %v, want %s", err, errors.TypeUnitAmbiguity)
	}
}

func TestAnalyzeZeroTimestamp(t *testing.T) {
	records := []usage.Record{
		{Amount: 1.0, Unit: "kWh"},
	}

	_, err := New(rates.Default()).Analyze(records, "kWh")
	if !errors.IsType(err, errors.TypeClassification) {
		t.Errorf("Analyze(zero timestamp) error = %v, want %s", err, errors.TypeClassification)
	}
}
