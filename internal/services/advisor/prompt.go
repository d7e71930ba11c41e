package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattcarrick/advisor/internal/models"
)

// promptTemplate is the instruction sent to the text-generation service.
// The JSON structure block is the contract the extractor decodes against;
// changes here must be mirrored in extract.go.
const promptTemplate = `You are an expert Indian financial advisor.

Given the following client profile:
- Age: %d
- Income: ₹%s
- Risk Tolerance: %s
- Investment Goal: %s

Suggest a detailed investment portfolio allocation based on these risk percentages:
- Stocks: %d%% (₹%s)
- Bonds: %d%% (₹%s)
- Cash: %d%% (₹%s)

Assuming the client invests ₹%s annually, calculate the exact amount in ₹ to allocate to each category.

For each category, provide:

1. **Stocks**
   - List specific Indian stocks to invest in.
   - Specify the exact amount to invest in each stock.
   - Brief details about each stock (industry, market position, growth potential).
   - Expected annual return %% and risk level (Low, Medium, High) for each stock.

2. **Bonds**
   - Recommend types of bonds (government, corporate, tax-free bonds, etc.).
   - Specify exact amount to invest in each bond type.
   - Details about the bond types, including tenure and yield.
   - Expected annual return %% and risk level for each bond type.

3. **Cash Instruments**
   - Recommend specific cash instruments (fixed deposits, liquid funds, savings accounts).
   - Specify exact amount to invest in each instrument.
   - Explain why each instrument is suitable for cash allocation.
   - Expected annual return %% and risk level for each instrument.

Return your answer strictly as a JSON object with this structure:

{
  "Stocks": [
    {
      "name": "Stock Name",
      "amount_invested": number,
      "details": "Brief info about stock",
      "expected_return": "x%%",
      "risk": "Low|Medium|High"
    }
  ],
  "Bonds": [
    {
      "type": "Bond Type",
      "amount_invested": number,
      "details": "Brief info about bond",
      "expected_return": "x%%",
      "risk": "Low|Medium|High"
    }
  ],
  "Cash": [
    {
      "instrument": "Instrument Name",
      "amount_invested": number,
      "details": "Why suitable",
      "expected_return": "x%%",
      "risk": "Low|Medium|High"
    }
  ]
}`

// BuildPrompt renders the advisory prompt for a validated profile and its
// allocation. Per-bucket rupee amounts are derived from the annual income so
// the generator works from concrete figures rather than percentages alone.
func BuildPrompt(profile models.ClientProfile, allocation models.AllocationWeights) string {
	income := formatINR(profile.Income)
	stocksAmt := formatINR(bucketAmount(profile.Income, allocation.Stocks))
	bondsAmt := formatINR(bucketAmount(profile.Income, allocation.Bonds))
	cashAmt := formatINR(bucketAmount(profile.Income, allocation.Cash))

	return fmt.Sprintf(promptTemplate,
		profile.Age,
		income,
		models.ParseRiskTolerance(profile.RiskTolerance),
		profile.Goal,
		allocation.Stocks, stocksAmt,
		allocation.Bonds, bondsAmt,
		allocation.Cash, cashAmt,
		income,
	)
}

// bucketAmount converts a percentage weight to a rupee amount.
func bucketAmount(income float64, pct int) float64 {
	return income * float64(pct) / 100
}

// formatINR renders an amount with Indian digit grouping: the last three
// digits form one group, every pair of digits before that forms another
// (1234567 -> "12,34,567"). Fractions are shown to two places only when
// present.
func formatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole, frac := cents/100, cents%100
	digits := fmt.Sprintf("%d", whole)

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append(groups, head[len(head)-2:])
			head = head[:len(head)-2]
		}
		groups = append(groups, head)
		// groups were collected right-to-left
		for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
			groups[i], groups[j] = groups[j], groups[i]
		}
		digits = strings.Join(groups, ",")
	}

	if frac > 0 {
		digits = fmt.Sprintf("%s.%02d", digits, frac)
	}
	if negative {
		return "-" + digits
	}
	return digits
}
