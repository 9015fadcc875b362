package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemWithCategory(category string) *QuoteItem {
	return &QuoteItem{
		ID:      uuid.New(),
		Product: ProductSnapshot{Name: "item", CategoryName: category},
	}
}

func TestGroupItems_SortsAlphabeticallyWithUncategorizedLast(t *testing.T) {
	items := []*QuoteItem{
		itemWithCategory("투어"),
		itemWithCategory(""),
		itemWithCategory("교통"),
		itemWithCategory("투어"),
	}

	groups := GroupItems(items)

	require.Len(t, groups, 3)
	assert.Equal(t, "교통", groups[0].Category)
	assert.Equal(t, "투어", groups[1].Category)
	assert.Equal(t, UncategorizedLabel, groups[2].Category)
	assert.Len(t, groups[1].Items, 2)

	// Insertion order is preserved inside a group.
	assert.Equal(t, items[0].ID, groups[1].Items[0].ID)
	assert.Equal(t, items[3].ID, groups[1].Items[1].ID)
}

func TestGroupItems_Empty(t *testing.T) {
	assert.Empty(t, GroupItems(nil))
}

func TestPaxTotal(t *testing.T) {
	assert.Equal(t, 0, Pax{}.Total())
	assert.Equal(t, 4, Pax{Adults: 2, Children: 1, Infants: 1}.Total())
}
