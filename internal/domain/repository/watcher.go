package repository

import (
	"context"

	"tourquote/internal/domain/entity"
)

// Snapshot is one full-collection push from a live subscription. Consumers
// replace their local copy wholesale; there is no incremental diffing. A
// non-nil Err terminates the subscription (the channel closes after it).
type Snapshot[T any] struct {
	Data []T
	Err  error
}

// CatalogWatcher exposes the store's live read path: each Watch call opens a
// subscription that pushes a full snapshot of the collection on every remote
// change, starting with the current contents. The channel closes when ctx is
// cancelled or after an error snapshot.
type CatalogWatcher interface {
	// WatchCountries subscribes to the countries collection.
	WatchCountries(ctx context.Context) <-chan Snapshot[*entity.Country]

	// WatchCities subscribes to the cities collection.
	WatchCities(ctx context.Context) <-chan Snapshot[*entity.City]

	// WatchCategories subscribes to the categories collection.
	WatchCategories(ctx context.Context) <-chan Snapshot[*entity.Category]

	// WatchProducts subscribes to the products collection.
	WatchProducts(ctx context.Context) <-chan Snapshot[*entity.Product]
}
