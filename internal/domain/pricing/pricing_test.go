package pricing

import (
	"math"
	"testing"

	"tourquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perPersonItem(adult, child, infant float64) *entity.QuoteItem {
	return &entity.QuoteItem{
		ID: uuid.New(),
		Product: entity.ProductSnapshot{
			PricingMode: entity.PricingPerPerson,
			PriceAdult:  adult,
			PriceChild:  child,
			PriceInfant: infant,
		},
	}
}

func perUnitItem(quantity int, price float64) *entity.QuoteItem {
	return &entity.QuoteItem{
		ID:           uuid.New(),
		Product:      entity.ProductSnapshot{PricingMode: entity.PricingPerUnit},
		Quantity:     quantity,
		AppliedPrice: price,
	}
}

func TestItemTotal_PerPerson_DependsOnlyOnPax(t *testing.T) {
	item := perPersonItem(100, 50, 10)
	pax := entity.Pax{Adults: 2, Children: 1, Infants: 1}

	assert.Equal(t, 260.0, ItemTotal(item, pax))

	// Quantity and applied price on the item must not influence the total.
	item.Quantity = 99
	item.AppliedPrice = 12345
	assert.Equal(t, 260.0, ItemTotal(item, pax))
}

func TestItemTotal_PerUnit_UnaffectedByPax(t *testing.T) {
	item := perUnitItem(2, 10.5)

	assert.Equal(t, 21.0, ItemTotal(item, entity.Pax{}))
	assert.Equal(t, 21.0, ItemTotal(item, entity.Pax{Adults: 7, Children: 3}))
}

func TestRecompute_GrandTotalIsSumOfSums(t *testing.T) {
	q := &entity.Quote{
		Info: entity.QuoteInfo{Pax: entity.Pax{Adults: 2, Children: 1}},
		Days: []*entity.QuoteDay{
			{ID: uuid.New(), Items: []*entity.QuoteItem{
				perPersonItem(100, 50, 0),
				perUnitItem(3, 20),
			}},
			{ID: uuid.New(), Items: []*entity.QuoteItem{
				perUnitItem(1, 99.5),
			}},
			{ID: uuid.New()},
		},
	}

	Recompute(q)

	assert.Equal(t, 250.0, q.Days[0].Items[0].Total)
	assert.Equal(t, 60.0, q.Days[0].Items[1].Total)
	assert.Equal(t, 310.0, q.Days[0].DayTotal)
	assert.Equal(t, 99.5, q.Days[1].DayTotal)
	assert.Equal(t, 0.0, q.Days[2].DayTotal)
	assert.Equal(t, 409.5, q.GrandTotal)

	// Pax change flows into every per-person item on the next recompute.
	q.Info.Pax = entity.Pax{Adults: 1}
	Recompute(q)
	assert.Equal(t, 100.0, q.Days[0].Items[0].Total)
	assert.Equal(t, 60.0, q.Days[0].Items[1].Total)
	assert.Equal(t, 259.5, q.GrandTotal)
}

func TestRecompute_InvariantHoldsAfterMutationSequence(t *testing.T) {
	q := &entity.Quote{
		Info: entity.QuoteInfo{Pax: entity.Pax{Adults: 2}},
		Days: []*entity.QuoteDay{{ID: uuid.New()}},
	}

	check := func() {
		t.Helper()
		want := 0.0
		for _, day := range q.Days {
			daySum := 0.0
			for _, item := range day.Items {
				daySum += item.Total
			}
			require.Equal(t, daySum, day.DayTotal)
			want += daySum
		}
		require.Equal(t, want, q.GrandTotal)
	}

	q.Days[0].Items = append(q.Days[0].Items, perPersonItem(80, 40, 0))
	Recompute(q)
	check()

	q.Days = append(q.Days, &entity.QuoteDay{ID: uuid.New(), Items: []*entity.QuoteItem{perUnitItem(4, 12.5)}})
	Recompute(q)
	check()

	q.Days[1].Items[0].Quantity = 2
	Recompute(q)
	check()

	q.Info.Pax = entity.Pax{Adults: 3, Infants: 2}
	Recompute(q)
	check()

	q.Days = q.Days[:1]
	Recompute(q)
	check()
}

func TestDerive_PerPerson_WeightedAverage(t *testing.T) {
	product := entity.ProductSnapshot{
		PricingMode: entity.PricingPerPerson,
		PriceAdult:  100,
		PriceChild:  50,
	}
	pax := entity.Pax{Adults: 2, Children: 1}

	quantity, price := Derive(product, pax)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, 83.0, price)

	// The display line must agree with the per-head sum within one unit.
	item := &entity.QuoteItem{Product: product, Quantity: quantity, AppliedPrice: price}
	perHeadSum := ItemTotal(item, pax)
	assert.Equal(t, 250.0, perHeadSum)
	assert.LessOrEqual(t, math.Abs(perHeadSum-float64(quantity)*price), 1.0)
}

func TestDerive_PerPerson_EmptyParty(t *testing.T) {
	product := entity.ProductSnapshot{PricingMode: entity.PricingPerPerson, PriceAdult: 100}

	quantity, price := Derive(product, entity.Pax{})
	assert.Equal(t, 1, quantity)
	assert.Equal(t, 0.0, price)
}

func TestDerive_PerUnit(t *testing.T) {
	product := entity.ProductSnapshot{PricingMode: entity.PricingPerUnit, PriceUnit: 40000}

	quantity, price := Derive(product, entity.Pax{Adults: 5})
	assert.Equal(t, 1, quantity)
	assert.Equal(t, 40000.0, price)
}

func TestRoundCurrency_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 83.0, RoundCurrency(83.333))
	assert.Equal(t, 84.0, RoundCurrency(83.5))
	assert.Equal(t, -84.0, RoundCurrency(-83.5))
	assert.Equal(t, 0.0, RoundCurrency(0))
}
