package usage

import "time"

// Bucket is one of the three mutually exclusive usage classifications.
// Every timestamp maps to exactly one bucket.
type Bucket int

const (
	// WinterPeak is November through March during peak hours
	WinterPeak Bucket = iota

	// WinterOffPeak is November through March outside peak hours
	WinterOffPeak

	// SummerAll is April through October, all hours
	SummerAll
)

// Buckets lists all buckets in display order
var Buckets = []Bucket{WinterPeak, WinterOffPeak, SummerAll}

// String returns the bucket name
func (b Bucket) String() string {
	switch b {
	case WinterPeak:
		return "winter_peak"
	case WinterOffPeak:
		return "winter_off_peak"
	case SummerAll:
		return "summer"
	default:
		return "unknown"
	}
}

// Classify assigns a timestamp to its bucket. Winter is November
// through March; peak hours are the half-open intervals [7,11) and
// [17,21), so a reading at 10:59 is peak and one at 11:00 is not.
// Hours use minute-truncated 24-hour granularity: a reading exactly
// on an hour boundary belongs to that hour.
func Classify(t time.Time) Bucket {
	if !isWinterMonth(t.Month()) {
		return SummerAll
	}
	if isPeakHour(t.Hour()) {
		return WinterPeak
	}
	return WinterOffPeak
}

func isWinterMonth(m time.Month) bool {
	return m >= time.November || m <= time.March
}

func isPeakHour(h int) bool {
	return (h >= 7 && h < 11) || (h >= 17 && h < 21)
}
