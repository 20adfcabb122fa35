package engine

import (
	"fmt"
	"strings"
)

// Comparison is the result of comparing a batch's category totals against
// a reference baseline.
type Comparison struct {
	// Differences holds totals[cat] - baseline[cat] for every category.
	Differences Totals `json:"differences"`
	// TotalDifference is sum(totals) - sum(baseline).
	TotalDifference float64 `json:"total_difference"`
	// Summary is the per-category and overall comparison prose.
	Summary string `json:"summary"`
	// Advice holds one improvement suggestion per exceeded category plus
	// an overall closing line.
	Advice string `json:"advice"`
}

// categoryAdvice maps each category to its fixed improvement suggestion,
// emitted only when the category exceeds the baseline.
var categoryAdvice = map[Category]string{ //nolint:gochecknoglobals // Constant lookup table
	CategoryTransport: "Consider using public transport, carpooling, or cycling to reduce transport emissions.",
	CategoryDiet:      "Try reducing meat consumption and incorporating more plant-based meals.",
	CategoryEnergy:    "Use energy-efficient appliances and consider renewable energy sources.",
	CategoryWaste:     "Reduce waste by recycling, composting, and avoiding single-use plastics.",
}

// Aggregate sums each category across the batch. An empty batch yields
// all-zero totals. Summation is order-independent: permuting the input
// produces identical totals.
func Aggregate(breakdowns []Breakdown) Totals {
	totals := NewTotals()
	for _, b := range breakdowns {
		for _, cat := range Categories() {
			totals[cat] += b.Value(cat)
		}
	}
	return totals
}

// Compare computes per-category and overall differences between totals and
// baseline and builds the summary and advice text.
//
// For each category over the baseline, the summary states the excess to two
// decimals and the advice adds that category's fixed suggestion. Categories
// at or under the baseline get a below-baseline summary line and no
// suggestion. The overall line reports the total difference, closing with
// encouragement when under and a focus reminder when over.
func Compare(totals, baseline Totals) Comparison {
	differences := NewTotals()
	for _, cat := range Categories() {
		differences[cat] = totals[cat] - baseline[cat]
	}
	totalDifference := totals.Sum() - baseline.Sum()

	var summary, advice strings.Builder
	summary.WriteString("Comparison with World Averages:\n")
	advice.WriteString("Suggestions for Improvement:\n")

	for _, cat := range Categories() {
		diff := differences[cat]
		if diff > 0 {
			fmt.Fprintf(&summary, "- %s: You emit %.2f kgCO2 more than the average.\n", titleCase(cat), diff)
			fmt.Fprintf(&advice, "- %s\n", categoryAdvice[cat])
		} else {
			fmt.Fprintf(&summary, "- %s: You emit %.2f kgCO2 less than the average.\n", titleCase(cat), -diff)
		}
	}

	if totalDifference > 0 {
		fmt.Fprintf(&summary, "\nOverall, you emit %.2f kgCO2 more than the world average.", totalDifference)
		advice.WriteString("\n- Overall, focus on reducing emissions in the areas where you exceed the average.")
	} else {
		fmt.Fprintf(&summary, "\nOverall, you emit %.2f kgCO2 less than the world average.", -totalDifference)
		advice.WriteString("\n- Great job! Keep maintaining or improving your low carbon footprint.")
	}

	return Comparison{
		Differences:     differences,
		TotalDifference: totalDifference,
		Summary:         summary.String(),
		Advice:          advice.String(),
	}
}

// titleCase capitalizes a category name for display.
func titleCase(cat Category) string {
	s := string(cat)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
