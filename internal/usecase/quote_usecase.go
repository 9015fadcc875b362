package usecase

import (
	"context"

	"tourquote/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteInfoInput carries the editable header fields of a quote.
type QuoteInfoInput struct {
	CustomerName string `json:"customer_name"`
	CountryID    string `json:"country_id"`
	CityID       string `json:"city_id"`
	Adults       int    `json:"adults" validate:"gte=0"`
	Children     int    `json:"children" validate:"gte=0"`
	Infants      int    `json:"infants" validate:"gte=0"`
}

// ItemUpdateInput carries a partial edit of a quote item; nil fields are left
// untouched.
type ItemUpdateInput struct {
	Quantity     *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	AppliedPrice *float64 `json:"applied_price,omitempty" validate:"omitempty,gte=0"`
}

// CSVExport bundles a rendered CSV payload with its download filename.
type CSVExport struct {
	FileName string
	Data     []byte
}

// QuoteUsecase is the quote builder surface: a session-scoped mutable tree of
// days and items whose totals are fully recomputed after every mutation.
type QuoteUsecase interface {
	// CreateQuote starts a new quote session with one empty day.
	CreateQuote(ctx context.Context) (*entity.Quote, error)

	// GetQuote retrieves a quote session by ID.
	GetQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error)

	// UpdateInfo sets the quote header. When the country changes and the
	// current city no longer belongs to it, the city is cleared.
	UpdateInfo(ctx context.Context, quoteID uuid.UUID, input QuoteInfoInput) (*entity.Quote, error)

	// AddDay appends an empty day to the itinerary.
	AddDay(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error)

	// RemoveDay removes a day. Removing the last remaining day is rejected.
	RemoveDay(ctx context.Context, quoteID, dayID uuid.UUID) (*entity.Quote, error)

	// AddItem adds a catalog product to a day, snapshotting the product and
	// deriving the initial quantity and applied price from the pricing mode.
	AddItem(ctx context.Context, quoteID, dayID uuid.UUID, productID string) (*entity.Quote, error)

	// UpdateItem edits an item's quantity or applied price.
	UpdateItem(ctx context.Context, quoteID, dayID, itemID uuid.UUID, input ItemUpdateInput) (*entity.Quote, error)

	// RemoveItem removes an item from a day.
	RemoveItem(ctx context.Context, quoteID, dayID, itemID uuid.UUID) (*entity.Quote, error)

	// ExportText renders the quote as a plain-text summary.
	ExportText(ctx context.Context, quoteID uuid.UUID) (string, error)

	// ExportCSV renders the quote as a CSV download.
	ExportCSV(ctx context.Context, quoteID uuid.UUID) (*CSVExport, error)
}
