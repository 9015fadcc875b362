package export

import (
	"strconv"
	"strings"

	"tourquote/internal/domain/entity"
)

// ExportText renders the quote as the clipboard-ready plain-text summary:
// customer header, pax line, one section per day with category-grouped item
// lines and the day subtotal, then the grand total. Categories sort
// alphabetically with the uncategorized bucket last; line order is fixed.
func (e *quoteExporter) ExportText(q *entity.Quote) string {
	var b strings.Builder

	b.WriteString("[견적서]\n")
	name := q.Info.CustomerName
	if name == "" {
		name = "-"
	}
	b.WriteString("고객명: " + name + "\n")
	b.WriteString("인원: 성인 " + strconv.Itoa(q.Info.Pax.Adults) +
		", 아동 " + strconv.Itoa(q.Info.Pax.Children) +
		", 유아 " + strconv.Itoa(q.Info.Pax.Infants) + "\n")

	for i, day := range q.Days {
		b.WriteString("\n" + strconv.Itoa(i+1) + "일차\n")
		for _, group := range entity.GroupItems(day.Items) {
			b.WriteString("[" + group.Category + "]\n")
			for _, item := range group.Items {
				b.WriteString("- " + item.Product.Name)
				if item.Product.PricingMode == entity.PricingPerUnit {
					b.WriteString(" (" + strconv.Itoa(item.Quantity) + " x " + formatWon(item.AppliedPrice) + ")")
				}
				b.WriteString(": " + formatWon(item.Total) + "\n")
			}
		}
		b.WriteString(strconv.Itoa(i+1) + "일차 합계: " + formatWon(day.DayTotal) + "\n")
	}

	b.WriteString("\n총 합계: " + formatWon(q.GrandTotal) + "\n")

	return b.String()
}
