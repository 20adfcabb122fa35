// Package engine implements the emission calculation and aggregation core.
//
// The engine converts raw activity rows into per-record emission breakdowns
// using an injectable factor table, aggregates breakdowns into per-category
// totals, and compares totals against a reference baseline to produce
// structured differences plus summary and advisory text. Conversion is pure;
// the only mutation point is the Session history accumulator.
package engine

import (
	"encoding/json"
	"time"
)

// Category is one of the four emission categories.
type Category string

// Emission categories, in canonical display order.
const (
	CategoryTransport Category = "transport"
	CategoryDiet      Category = "diet"
	CategoryEnergy    Category = "energy"
	CategoryWaste     Category = "waste"
)

// Categories returns the emission categories in canonical display order.
func Categories() []Category {
	return []Category{CategoryTransport, CategoryDiet, CategoryEnergy, CategoryWaste}
}

// dateLayout is the strict layout activity dates must parse against.
const dateLayout = "2006-01-02"

// Breakdown is the immutable result of converting one raw row: the kgCO2
// contributed by each category, each rounded to two decimals, plus their
// rounded sum.
type Breakdown struct {
	Date      time.Time
	Transport float64
	Diet      float64
	Energy    float64
	Waste     float64
	Total     float64
}

// Value returns the kgCO2 contribution of the given category.
func (b Breakdown) Value(cat Category) float64 {
	switch cat {
	case CategoryTransport:
		return b.Transport
	case CategoryDiet:
		return b.Diet
	case CategoryEnergy:
		return b.Energy
	case CategoryWaste:
		return b.Waste
	default:
		return 0
	}
}

// breakdownJSON is the wire shape of a Breakdown, with the date rendered
// in the same YYYY-MM-DD form it was ingested in.
type breakdownJSON struct {
	Date      string  `json:"date"`
	Transport float64 `json:"transport"`
	Diet      float64 `json:"diet"`
	Energy    float64 `json:"energy"`
	Waste     float64 `json:"waste"`
	Total     float64 `json:"total"`
}

// MarshalJSON renders the breakdown with a YYYY-MM-DD date.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(breakdownJSON{
		Date:      b.Date.Format(dateLayout),
		Transport: b.Transport,
		Diet:      b.Diet,
		Energy:    b.Energy,
		Waste:     b.Waste,
		Total:     b.Total,
	})
}

// UnmarshalJSON parses the wire shape produced by MarshalJSON.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var wire breakdownJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	date, err := time.Parse(dateLayout, wire.Date)
	if err != nil {
		return err
	}
	*b = Breakdown{
		Date:      date,
		Transport: wire.Transport,
		Diet:      wire.Diet,
		Energy:    wire.Energy,
		Waste:     wire.Waste,
		Total:     wire.Total,
	}
	return nil
}

// Totals holds per-category kgCO2 sums for a batch of breakdowns.
type Totals map[Category]float64

// NewTotals returns a Totals with every category present and zeroed.
// An empty batch aggregates to exactly this value; that is a defined,
// not erroneous, case.
func NewTotals() Totals {
	t := make(Totals, len(Categories()))
	for _, cat := range Categories() {
		t[cat] = 0
	}
	return t
}

// Sum returns the sum of all category totals.
func (t Totals) Sum() float64 {
	var sum float64
	for _, cat := range Categories() {
		sum += t[cat]
	}
	return sum
}
