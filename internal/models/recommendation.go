package models

import "time"

// AllocationWeights is a percentage split across the three buckets.
// Engine output always sums to exactly 100.
type AllocationWeights struct {
	Stocks int `json:"stocks_pct"`
	Bonds  int `json:"bonds_pct"`
	Cash   int `json:"cash_pct"`
}

// Sum returns the total of the three weights.
func (w AllocationWeights) Sum() int {
	return w.Stocks + w.Bonds + w.Cash
}

// Bucket names for RecommendationBuckets and category rollups.
const (
	BucketStocks = "Stocks"
	BucketBonds  = "Bonds"
	BucketCash   = "Cash"
)

// InstrumentLine is one concrete recommended holding within a bucket.
// ExpectedReturn is kept as the generator's string form ("6.8% (Tax-Free)");
// use portfolio.ParseReturnPct for the numeric rate.
type InstrumentLine struct {
	Label          string  `json:"label"`
	AmountInvested float64 `json:"amount_invested"`
	Details        string  `json:"details"`
	ExpectedReturn string  `json:"expected_return"`
	Risk           string  `json:"risk"`
}

// RecommendationBuckets holds the instrument lines per allocation bucket.
type RecommendationBuckets struct {
	Stocks []InstrumentLine `json:"stocks"`
	Bonds  []InstrumentLine `json:"bonds"`
	Cash   []InstrumentLine `json:"cash"`
}

// IsEmpty reports whether no bucket contains any line.
func (b RecommendationBuckets) IsEmpty() bool {
	return len(b.Stocks) == 0 && len(b.Bonds) == 0 && len(b.Cash) == 0
}

// All returns every line across the three buckets, bucket order preserved.
func (b RecommendationBuckets) All() []InstrumentLine {
	all := make([]InstrumentLine, 0, len(b.Stocks)+len(b.Bonds)+len(b.Cash))
	all = append(all, b.Stocks...)
	all = append(all, b.Bonds...)
	all = append(all, b.Cash...)
	return all
}

// RecommendationResult is the final response shape for a recommendation call.
// When the generator's output could not be parsed into the structured schema,
// Buckets is empty and RawFallback carries the unparsed text — callers must
// branch on Degraded().
type RecommendationResult struct {
	Profile     ClientProfile         `json:"profile"`
	Allocation  AllocationWeights     `json:"allocation"`
	Buckets     RecommendationBuckets `json:"buckets"`
	Narrative   string                `json:"narrative,omitempty"`
	RawFallback string                `json:"raw_fallback,omitempty"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// Degraded reports whether structured parsing failed and only raw text is
// available.
func (r *RecommendationResult) Degraded() bool {
	return r.RawFallback != ""
}
