package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"unicode"

	"tourquote/internal/domain/entity"
)

// utf8BOM keeps spreadsheet applications from misreading the Korean cells.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"일차", "카테고리", "상품명", "요금방식", "성인", "아동", "유아", "수량", "단가", "합계",
}

const notApplicable = "N/A"

// ExportCSV renders one row per quote item. Per-person rows carry N/A in the
// unit quantity and unit price columns; per-unit rows carry them verbatim.
func (e *quoteExporter) ExportCSV(q *entity.Quote) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	_ = w.Write(csvHeader) // writes to bytes.Buffer cannot fail

	for i, day := range q.Days {
		for _, item := range day.Items {
			category := item.Product.CategoryName
			if category == "" {
				category = entity.UncategorizedLabel
			}

			quantity := notApplicable
			unitPrice := notApplicable
			if item.Product.PricingMode == entity.PricingPerUnit {
				quantity = strconv.Itoa(item.Quantity)
				unitPrice = formatNumber(item.AppliedPrice)
			}

			_ = w.Write([]string{
				strconv.Itoa(i + 1),
				category,
				item.Product.Name,
				item.Product.PricingMode.Label(),
				strconv.Itoa(q.Info.Pax.Adults),
				strconv.Itoa(q.Info.Pax.Children),
				strconv.Itoa(q.Info.Pax.Infants),
				quantity,
				unitPrice,
				formatNumber(item.Total),
			})
		}
	}

	w.Flush()

	return buf.Bytes()
}

// CSVFileName derives the download filename from the customer name, falling
// back to "quote" when nothing survives sanitization.
func (e *quoteExporter) CSVFileName(q *entity.Quote) string {
	sanitized := sanitizeFileName(q.Info.CustomerName)
	if sanitized == "" {
		sanitized = "quote"
	}

	return sanitized + "_quote.csv"
}

// sanitizeFileName keeps letters, digits, dash and underscore and folds runs
// of anything else into single underscores.
func sanitizeFileName(name string) string {
	var b strings.Builder
	lastUnderscore := false

	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}
