// Package service defines domain service interfaces implemented by the infra layer.
package service

import "tourquote/internal/domain/entity"

// QuoteExporter serializes an assembled quote for handover to the customer.
type QuoteExporter interface {
	// ExportText renders the quote as a plain-text summary (clipboard payload):
	// customer, party composition, per-day sections with item and day totals,
	// and a trailing grand total.
	ExportText(q *entity.Quote) string

	// ExportCSV renders one row per quote item, UTF-8 with a byte-order mark
	// for spreadsheet compatibility.
	ExportCSV(q *entity.Quote) []byte

	// CSVFileName returns the download filename derived from the customer name.
	CSVFileName(q *entity.Quote) string
}
