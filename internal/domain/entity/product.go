package entity

// Product is a priced catalog entry (tour, transfer, ticket) scoped to a City
// and a Category.
//
// For PricingPerPerson products the three per-head prices are meaningful and
// each defaults to 0 when absent; for PricingPerUnit only PriceUnit is
// meaningful.
type Product struct {
	ID          string      `json:"id"`                    // Firestore document ID.
	Name        string      `json:"name"`                  // Display name of the product.
	Description string      `json:"description,omitempty"` // Optional free-form description.
	URL         string      `json:"url,omitempty"`         // Optional reference URL.
	CityID      string      `json:"city_id"`               // ID of the owning City.
	CategoryID  string      `json:"category_id"`           // ID of the owning Category.
	PricingMode PricingMode `json:"pricing_mode"`          // How quote totals are computed.
	PriceAdult  float64     `json:"price_adult"`           // Per-adult price (per-person mode).
	PriceChild  float64     `json:"price_child"`           // Per-child price (per-person mode).
	PriceInfant float64     `json:"price_infant"`          // Per-infant price (per-person mode).
	PriceUnit   float64     `json:"price_unit"`            // Unit price (per-unit mode).
}
