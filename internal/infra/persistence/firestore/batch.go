package firestore

import (
	"context"

	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"

	"cloud.google.com/go/firestore"
)

// maxBatchWrites is Firestore's hard limit on writes per atomic batch.
const maxBatchWrites = 500

type catalogBatcher struct {
	client *firestore.Client
}

// NewCatalogBatcher creates the Firestore-backed atomic delete batcher.
func NewCatalogBatcher(client *firestore.Client) repository.CatalogBatcher {
	return &catalogBatcher{client: client}
}

func (b *catalogBatcher) Capacity() int {
	return maxBatchWrites
}

// DeleteAll commits every delete in set as a single atomic batch. Either all
// documents are removed or none are.
func (b *catalogBatcher) DeleteAll(ctx context.Context, set repository.DeleteSet) error {
	if set.Empty() {
		return nil
	}
	if set.Size() > maxBatchWrites {
		return repository.ErrBatchCapacityExceeded
	}

	batch := b.client.Batch()
	for _, id := range set.ProductIDs {
		batch.Delete(b.client.Collection(collProducts).Doc(id))
	}
	for _, id := range set.CityIDs {
		batch.Delete(b.client.Collection(collCities).Doc(id))
	}
	for _, id := range set.CountryIDs {
		batch.Delete(b.client.Collection(collCountries).Doc(id))
	}
	for _, id := range set.CategoryIDs {
		batch.Delete(b.client.Collection(collCategories).Doc(id))
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit delete batch")
	}

	return nil
}
