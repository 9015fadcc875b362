package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Pax is the party composition of a quote.
type Pax struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the total head count of the party.
func (p Pax) Total() int {
	return p.Adults + p.Children + p.Infants
}

// QuoteInfo carries the customer and destination header of a quote.
// CityID must belong to CountryID; changing the country clears a city that no
// longer matches.
type QuoteInfo struct {
	CustomerName string `json:"customer_name"`
	CountryID    string `json:"country_id"`
	CityID       string `json:"city_id"`
	Pax          Pax    `json:"pax"`
}

// ProductSnapshot is the slice of a Product a QuoteItem keeps for its
// lifetime. Quotes are transient and must keep rendering and pricing
// correctly even after the catalog entry is edited or cascade-deleted.
type ProductSnapshot struct {
	ProductID    string      `json:"product_id"`
	Name         string      `json:"name"`
	CategoryName string      `json:"category_name"` // Empty for uncategorized products.
	PricingMode  PricingMode `json:"pricing_mode"`
	PriceAdult   float64     `json:"price_adult"`
	PriceChild   float64     `json:"price_child"`
	PriceInfant  float64     `json:"price_infant"`
	PriceUnit    float64     `json:"price_unit"`
}

// QuoteItem is one priced line of a quote day.
//
// For per-person products Quantity and AppliedPrice are derived on creation
// for display and the Total keeps recomputing from the quote's pax; for
// per-unit products both fields are user-edited and Total is always
// Quantity * AppliedPrice.
type QuoteItem struct {
	ID           uuid.UUID       `json:"id"`
	Product      ProductSnapshot `json:"product"`
	Quantity     int             `json:"quantity"`
	AppliedPrice float64         `json:"applied_price"`
	Total        float64         `json:"total"`
}

// QuoteDay is one itinerary day holding items in insertion order.
type QuoteDay struct {
	ID       uuid.UUID    `json:"id"`
	Items    []*QuoteItem `json:"items"`
	DayTotal float64      `json:"day_total"`
}

// Quote is the transient root of the assembly model. It lives only in session
// state and is never persisted to the catalog store.
type Quote struct {
	ID         uuid.UUID   `json:"id"`
	Info       QuoteInfo   `json:"info"`
	Days       []*QuoteDay `json:"days"`
	GrandTotal float64     `json:"grand_total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Day returns the day with the given ID, or nil.
func (q *Quote) Day(dayID uuid.UUID) *QuoteDay {
	for _, day := range q.Days {
		if day.ID == dayID {
			return day
		}
	}

	return nil
}

// Item returns the item with the given ID, or nil.
func (d *QuoteDay) Item(itemID uuid.UUID) *QuoteItem {
	for _, item := range d.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

// UncategorizedLabel is the display bucket for items whose product has no
// category name.
const UncategorizedLabel = "미분류"

// ItemGroup is a display grouping of a day's items by category name.
type ItemGroup struct {
	Category string       `json:"category"`
	Items    []*QuoteItem `json:"items"`
}

// GroupItems groups items by their product's category name, preserving item
// insertion order inside each group. Groups sort alphabetically except the
// uncategorized bucket, which always sorts last.
func GroupItems(items []*QuoteItem) []*ItemGroup {
	byCategory := make(map[string]*ItemGroup)
	groups := make([]*ItemGroup, 0, len(items))

	for _, item := range items {
		name := item.Product.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}

		group, ok := byCategory[name]
		if !ok {
			group = &ItemGroup{Category: name}
			byCategory[name] = group
			groups = append(groups, group)
		}
		group.Items = append(group.Items, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		left, right := groups[i].Category, groups[j].Category
		if left == UncategorizedLabel {
			return false
		}
		if right == UncategorizedLabel {
			return true
		}

		return left < right
	})

	return groups
}
