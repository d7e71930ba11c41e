// Package portfolio persists portfolio records and aggregates holdings.
package portfolio

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mattcarrick/advisor/internal/models"
)

// Aggregate computes totals, projected values, and category/risk rollups for
// a set of recommendation buckets. Sums run across all lines regardless of
// bucket; projected value per line is amount × (1 + rate/100) with the rate
// parsed from the line's return string.
func Aggregate(buckets models.RecommendationBuckets) models.PortfolioSummary {
	summary := models.PortfolioSummary{
		CategoryTotals: map[string]float64{},
		RiskTotals:     map[string]float64{},
	}

	categories := []struct {
		name  string
		lines []models.InstrumentLine
	}{
		{models.BucketStocks, buckets.Stocks},
		{models.BucketBonds, buckets.Bonds},
		{models.BucketCash, buckets.Cash},
	}

	for _, cat := range categories {
		for _, line := range cat.lines {
			summary.TotalInvestment += line.AmountInvested
			summary.ProjectedValue += ProjectedValue(line)
			summary.CategoryTotals[cat.name] += line.AmountInvested
			if risk := strings.TrimSpace(line.Risk); risk != "" {
				summary.RiskTotals[risk] += line.AmountInvested
			}
			summary.LineCount++
		}
	}

	return summary
}

// BucketsFromAssets converts persisted portfolio assets into recommendation
// buckets so stored holdings can flow through the same aggregation path.
// Assets carry no expected return, so projected values equal the amounts.
func BucketsFromAssets(assets []models.Asset) models.RecommendationBuckets {
	var buckets models.RecommendationBuckets
	for _, asset := range assets {
		line := models.InstrumentLine{
			Label:          asset.Name,
			AmountInvested: asset.CurrentValue,
		}
		switch asset.AssetType {
		case models.BucketBonds:
			buckets.Bonds = append(buckets.Bonds, line)
		case models.BucketCash:
			buckets.Cash = append(buckets.Cash, line)
		default:
			buckets.Stocks = append(buckets.Stocks, line)
		}
	}
	return buckets
}

// ProjectedValue returns the line's amount grown by one year of its expected
// return.
func ProjectedValue(line models.InstrumentLine) float64 {
	rate := ParseReturnPct(line.ExpectedReturn)
	return line.AmountInvested * (1 + rate/100)
}

// ParseReturnPct extracts the numeric rate from a return string such as
// "12%", "6.8% (Tax-Free)", or "7 to 8%". Parenthetical annotations are
// dropped, then the leading numeric token is parsed. Unparseable strings
// yield 0.
func ParseReturnPct(s string) float64 {
	if idx := strings.Index(s, "("); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	end := 0
	seenDigit := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			seenDigit = true
			end++
			continue
		}
		if (c == '.' || c == '-' || c == '+') && !seenDigit {
			end++
			continue
		}
		if c == '.' && seenDigit {
			end++
			continue
		}
		break
	}
	if !seenDigit {
		return 0
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Sort keys accepted by SortLines.
const (
	SortByName      = "name"
	SortByAmount    = "amount"
	SortByReturn    = "return"
	SortByProjected = "projected"
	SortByRisk      = "risk"
)

// riskRank orders risk labels low to high; unknown labels sort last.
func riskRank(risk string) int {
	switch strings.ToLower(strings.TrimSpace(risk)) {
	case "low":
		return 0
	case "medium":
		return 1
	case "high":
		return 2
	default:
		return 3
	}
}

// SortLines stably sorts instrument lines by the given key. Ties keep their
// original order; desc reverses the comparison, not the slice, so stability
// holds in both directions. Unknown keys leave the slice untouched.
func SortLines(lines []models.InstrumentLine, key string, desc bool) {
	var less func(a, b models.InstrumentLine) bool

	switch key {
	case SortByName:
		less = func(a, b models.InstrumentLine) bool {
			return strings.ToLower(a.Label) < strings.ToLower(b.Label)
		}
	case SortByAmount:
		less = func(a, b models.InstrumentLine) bool {
			return a.AmountInvested < b.AmountInvested
		}
	case SortByReturn:
		less = func(a, b models.InstrumentLine) bool {
			return ParseReturnPct(a.ExpectedReturn) < ParseReturnPct(b.ExpectedReturn)
		}
	case SortByProjected:
		less = func(a, b models.InstrumentLine) bool {
			return ProjectedValue(a) < ProjectedValue(b)
		}
	case SortByRisk:
		less = func(a, b models.InstrumentLine) bool {
			return riskRank(a.Risk) < riskRank(b.Risk)
		}
	default:
		return
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if desc {
			return less(lines[j], lines[i])
		}
		return less(lines[i], lines[j])
	})
}
