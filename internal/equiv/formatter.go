package equiv

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display thresholds for abbreviated number formats.
const (
	// LargeNumberThreshold is where "~X.X million" format begins.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where "~X.X billion" format begins.
	BillionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated format; values at
// or above it use "~X.X million", and at or above BillionThreshold
// "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
