package repository

import (
	"context"

	"tourquote/internal/errors"
)

// ErrBatchCapacityExceeded is returned when a delete set does not fit into a
// single atomic commit. Splitting into multiple non-atomic commits is not an
// option: a partial failure would leave orphaned documents behind.
var ErrBatchCapacityExceeded = errors.New("delete set exceeds atomic batch capacity")

// DeleteSet is the set of documents a cascade removes in one atomic commit.
// Commit order is dependents first: products, cities, then the root.
type DeleteSet struct {
	ProductIDs  []string
	CityIDs     []string
	CountryIDs  []string
	CategoryIDs []string
}

// Size returns the number of writes the set occupies in a batch.
func (s DeleteSet) Size() int {
	return len(s.ProductIDs) + len(s.CityIDs) + len(s.CountryIDs) + len(s.CategoryIDs)
}

// Empty reports whether the set holds no documents.
func (s DeleteSet) Empty() bool {
	return s.Size() == 0
}

// CatalogBatcher commits a DeleteSet as a single all-or-nothing write.
type CatalogBatcher interface {
	// Capacity returns the maximum number of writes one atomic commit can hold.
	Capacity() int

	// DeleteAll removes every document in the set atomically. It returns
	// ErrBatchCapacityExceeded without touching the store when the set is
	// larger than Capacity. On any other error no document was removed.
	DeleteAll(ctx context.Context, set DeleteSet) error
}
