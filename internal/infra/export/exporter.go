// Package export renders assembled quotes as plain text and CSV.
package export

import (
	"strconv"
	"strings"

	"tourquote/internal/domain/pricing"
	"tourquote/internal/domain/service"
)

type quoteExporter struct{}

// NewQuoteExporter creates the text/CSV exporter.
func NewQuoteExporter() service.QuoteExporter {
	return &quoteExporter{}
}

// formatWon renders a display amount rounded to the whole won with thousands
// grouping, e.g. 1234567.4 -> "1,234,567원".
func formatWon(value float64) string {
	rounded := int64(pricing.RoundCurrency(value))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	if negative {
		return "-" + grouped.String() + "원"
	}

	return grouped.String() + "원"
}

// formatNumber renders a raw numeric CSV cell with full precision.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
