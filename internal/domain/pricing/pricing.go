// Package pricing computes quote totals as pure, order-independent folds over
// the quote tree.
package pricing

import (
	"math"

	"tourquote/internal/domain/entity"
)

// RoundCurrency rounds a monetary value to the nearest whole currency unit,
// half away from zero. Used for display values and for the derived applied
// price of per-person items; stored totals keep full precision.
func RoundCurrency(value float64) float64 {
	return math.Round(value)
}

// ItemTotal computes the total of a single item under the current party
// composition.
//
// Per-person items depend only on pax and the snapshot's per-head prices,
// never on the item's quantity or applied price. Per-unit items are exactly
// quantity * applied price and are unaffected by pax.
func ItemTotal(item *entity.QuoteItem, pax entity.Pax) float64 {
	if item.Product.PricingMode == entity.PricingPerPerson {
		return float64(pax.Adults)*item.Product.PriceAdult +
			float64(pax.Children)*item.Product.PriceChild +
			float64(pax.Infants)*item.Product.PriceInfant
	}

	return float64(item.Quantity) * item.AppliedPrice
}

// Recompute rebuilds the whole totals tree top-down from the per-item rules.
// It runs after every mutation so that grandTotal == Σ days Σ items holds
// before the new state is observable; there is no incremental update path
// that could drift.
func Recompute(q *entity.Quote) {
	grand := 0.0
	for _, day := range q.Days {
		dayTotal := 0.0
		for _, item := range day.Items {
			item.Total = ItemTotal(item, q.Info.Pax)
			dayTotal += item.Total
		}
		day.DayTotal = dayTotal
		grand += dayTotal
	}
	q.GrandTotal = grand
}

// Derive computes the initial quantity and applied price for an item added
// from the given product snapshot.
//
// Per-person: quantity is the total party size (minimum 1), applied price is
// the weighted per-head average rounded to a whole currency unit, so a single
// display line of quantity × price reproduces the per-head breakdown within
// one unit. Per-unit: quantity 1 at the product's unit price.
func Derive(product entity.ProductSnapshot, pax entity.Pax) (quantity int, appliedPrice float64) {
	if product.PricingMode == entity.PricingPerUnit {
		return 1, product.PriceUnit
	}

	totalPax := pax.Total()
	quantity = totalPax
	if quantity < 1 {
		quantity = 1
	}

	if totalPax == 0 {
		return quantity, 0
	}

	perHead := (float64(pax.Adults)*product.PriceAdult +
		float64(pax.Children)*product.PriceChild +
		float64(pax.Infants)*product.PriceInfant) / float64(totalPax)

	return quantity, RoundCurrency(perHead)
}
