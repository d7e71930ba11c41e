package advisor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mattcarrick/advisor/internal/models"
)

// flexAmount tolerates amounts arriving as JSON numbers or quoted strings.
// Unparseable values decode to zero rather than failing the whole document.
type flexAmount float64

func (f *flexAmount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexAmount(v)
	return nil
}

// flexString tolerates string fields arriving as numbers or other scalars.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(strings.Trim(string(data), `"`))
	return nil
}

// generatedLine mirrors one entry of the generator's JSON schema. The label
// key varies per bucket (name for stocks, type for bonds, instrument for
// cash); all three are accepted for every bucket and the first non-empty one
// wins.
type generatedLine struct {
	Name           flexString `json:"name"`
	Type           flexString `json:"type"`
	Instrument     flexString `json:"instrument"`
	AmountInvested flexAmount `json:"amount_invested"`
	Details        flexString `json:"details"`
	ExpectedReturn flexString `json:"expected_return"`
	Risk           flexString `json:"risk"`
}

func (g generatedLine) label() string {
	for _, s := range []flexString{g.Name, g.Type, g.Instrument} {
		if s != "" {
			return string(s)
		}
	}
	return ""
}

func (g generatedLine) toInstrumentLine() models.InstrumentLine {
	return models.InstrumentLine{
		Label:          g.label(),
		AmountInvested: float64(g.AmountInvested),
		Details:        string(g.Details),
		ExpectedReturn: string(g.ExpectedReturn),
		Risk:           string(g.Risk),
	}
}

// generatedPortfolio is the top-level generator response document.
type generatedPortfolio struct {
	Stocks []generatedLine `json:"Stocks"`
	Bonds  []generatedLine `json:"Bonds"`
	Cash   []generatedLine `json:"Cash"`
}

// ExtractBuckets parses generator output into recommendation buckets.
// Markdown code fences are stripped, then the slice from the first "{" to
// the last "}" is decoded. On any failure the second return is the raw text
// to surface as a degraded fallback; the caller never sees an error.
func ExtractBuckets(text string) (models.RecommendationBuckets, string) {
	candidate := stripFences(text)

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end == -1 || end < start {
		return models.RecommendationBuckets{}, text
	}

	var doc generatedPortfolio
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &doc); err != nil {
		return models.RecommendationBuckets{}, text
	}

	buckets := models.RecommendationBuckets{
		Stocks: toLines(doc.Stocks),
		Bonds:  toLines(doc.Bonds),
		Cash:   toLines(doc.Cash),
	}
	if buckets.IsEmpty() {
		return models.RecommendationBuckets{}, text
	}
	return buckets, ""
}

func toLines(gen []generatedLine) []models.InstrumentLine {
	if len(gen) == 0 {
		return nil
	}
	lines := make([]models.InstrumentLine, 0, len(gen))
	for _, g := range gen {
		lines = append(lines, g.toInstrumentLine())
	}
	return lines
}

// stripFences removes surrounding markdown code fences if present.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
