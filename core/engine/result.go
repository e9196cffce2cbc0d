package engine

import "github.com/shopspring/decimal"

// Result is the outcome of one analysis run. It is constructed once
// per run and read-only afterwards; rounding for display is the
// formatter's concern, not the engine's.
type Result struct {
	// WinterPeakKWh is usage during winter peak hours, in kWh
	WinterPeakKWh float64 `json:"winter_peak_usage"`

	// WinterOffPeakKWh is winter usage outside peak hours, in kWh
	WinterOffPeakKWh float64 `json:"winter_off_peak_usage"`

	// SummerKWh is April through October usage, in kWh
	SummerKWh float64 `json:"summer_usage"`

	// TotalKWh is total usage across all buckets, in kWh
	TotalKWh float64 `json:"total_usage"`

	// WinterPeakPct is the winter peak share of total usage, 0-100
	WinterPeakPct float64 `json:"winter_peak_percentage"`

	// WinterOffPeakPct is the winter off-peak share of total usage, 0-100
	WinterOffPeakPct float64 `json:"winter_off_peak_percentage"`

	// SummerPct is the summer share of total usage, 0-100
	SummerPct float64 `json:"summer_percentage"`

	// WinterPeakCost is the time-of-use cost of winter peak usage
	WinterPeakCost decimal.Decimal `json:"winter_peak_cost"`

	// WinterOffPeakCost is the time-of-use cost of winter off-peak usage
	WinterOffPeakCost decimal.Decimal `json:"winter_off_peak_cost"`

	// SummerCost is the time-of-use cost of summer usage
	SummerCost decimal.Decimal `json:"summer_cost"`

	// TotalTimeOfUseCost is the sum of the three bucket costs
	TotalTimeOfUseCost decimal.Decimal `json:"total_time_of_use_cost"`

	// TotalFixedRateCost is total usage priced at the flat rate
	TotalFixedRateCost decimal.Decimal `json:"total_fixed_rate_cost"`

	// Savings is fixed-rate cost minus time-of-use cost. Positive means
	// time-of-use billing is cheaper, negative means fixed-rate is.
	Savings decimal.Decimal `json:"savings"`
}
