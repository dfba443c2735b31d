// internal/scoring/ranges.go
package scoring

import "strings"

// Range is a dollar interval resolved from a bucket label.
type Range struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// Span returns the width of the range.
func (r Range) Span() float64 { return r.Max - r.Min }

// DefaultRange is returned for unknown or empty bucket labels.
var DefaultRange = Range{Min: 0, Max: 2_000_000}

var BudgetRanges = map[string]Range{
	"50-100":  {Min: 50_000, Max: 100_000},
	"100-200": {Min: 100_000, Max: 200_000},
	"200-350": {Min: 200_000, Max: 350_000},
	"350-500": {Min: 350_000, Max: 500_000},
	"500+":    {Min: 500_000, Max: 2_000_000},
}

var NetWorthRanges = map[string]Range{
	"under-250": {Min: 0, Max: 250_000},
	"250-500":   {Min: 250_000, Max: 500_000},
	"500-1m":    {Min: 500_000, Max: 1_000_000},
	"1m-3m":     {Min: 1_000_000, Max: 3_000_000},
	"3m+":       {Min: 3_000_000, Max: 10_000_000},
}

var LiquidCapitalRanges = map[string]Range{
	"under-50": {Min: 0, Max: 50_000},
	"50-100":   {Min: 50_000, Max: 100_000},
	"100-250":  {Min: 100_000, Max: 250_000},
	"250-500":  {Min: 250_000, Max: 500_000},
	"500+":     {Min: 500_000, Max: 2_000_000},
}

// ParseRange resolves a bucket label against table. Labels missing from the
// table, including the empty string, resolve to DefaultRange.
func ParseRange(id string, table map[string]Range) Range {
	if r, ok := table[strings.TrimSpace(id)]; ok {
		return r
	}
	return DefaultRange
}
