package entity

// PricingMode determines how a Product's quote total is computed.
type PricingMode string

const (
	// PricingPerPerson computes totals from the party composition and the
	// product's per-head prices.
	PricingPerPerson PricingMode = "per_person"
	// PricingPerUnit computes totals from an explicit quantity and unit price,
	// independent of the party composition.
	PricingPerUnit PricingMode = "per_unit"
)

// String returns the string representation of the PricingMode.
func (m PricingMode) String() string {
	return string(m)
}

// IsValid checks if the PricingMode is a valid value.
func (m PricingMode) IsValid() bool {
	switch m {
	case PricingPerPerson, PricingPerUnit:
		return true
	default:
		return false
	}
}

// Label returns the operator-facing Korean label used in exports.
func (m PricingMode) Label() string {
	switch m {
	case PricingPerPerson:
		return "1인 요금"
	case PricingPerUnit:
		return "단위 요금"
	default:
		return string(m)
	}
}
