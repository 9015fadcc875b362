package firestore

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"
	"tourquote/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type catalogWatcher struct {
	client *firestore.Client
}

// NewCatalogWatcher creates the Firestore-backed live catalog subscription.
func NewCatalogWatcher(client *firestore.Client) repository.CatalogWatcher {
	return &catalogWatcher{client: client}
}

func (w *catalogWatcher) WatchCountries(ctx context.Context) <-chan repository.Snapshot[*entity.Country] {
	query := w.client.Collection(collCountries).OrderBy("name", firestore.Asc)

	return watchCollection(ctx, query, func(snap *firestore.DocumentSnapshot) (*entity.Country, error) {
		var m model.CountryModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode country document")
		}

		return m.ToEntity(snap.Ref.ID), nil
	})
}

func (w *catalogWatcher) WatchCities(ctx context.Context) <-chan repository.Snapshot[*entity.City] {
	query := w.client.Collection(collCities).OrderBy("name", firestore.Asc)

	return watchCollection(ctx, query, func(snap *firestore.DocumentSnapshot) (*entity.City, error) {
		var m model.CityModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode city document")
		}

		return m.ToEntity(snap.Ref.ID), nil
	})
}

func (w *catalogWatcher) WatchCategories(ctx context.Context) <-chan repository.Snapshot[*entity.Category] {
	query := w.client.Collection(collCategories).OrderBy("name", firestore.Asc)

	return watchCollection(ctx, query, func(snap *firestore.DocumentSnapshot) (*entity.Category, error) {
		var m model.CategoryModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode category document")
		}

		return m.ToEntity(snap.Ref.ID), nil
	})
}

func (w *catalogWatcher) WatchProducts(ctx context.Context) <-chan repository.Snapshot[*entity.Product] {
	query := w.client.Collection(collProducts).OrderBy("name", firestore.Asc)

	return watchCollection(ctx, query, func(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
		var m model.ProductModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}

		return m.ToEntity(snap.Ref.ID), nil
	})
}

// watchCollection pumps full-collection snapshots into a channel until ctx is
// cancelled or the subscription fails. Every remote change produces a fresh
// complete slice, so consumers never merge deltas.
func watchCollection[T any](ctx context.Context, query firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) <-chan repository.Snapshot[T] {
	out := make(chan repository.Snapshot[T], 1)

	go func() {
		defer close(out)

		snaps := query.Snapshots(ctx)
		defer snaps.Stop()

		for {
			qsnap, err := snaps.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				trySend(ctx, out, repository.Snapshot[T]{Err: errors.Wrap(err, "collection subscription failed")})

				return
			}

			data, err := collectSnapshot(qsnap.Documents, decode)
			if err != nil {
				trySend(ctx, out, repository.Snapshot[T]{Err: err})

				return
			}

			if !trySend(ctx, out, repository.Snapshot[T]{Data: data}) {
				return
			}
		}
	}()

	return out
}

// trySend delivers one snapshot unless the subscriber is gone. Every send in
// the pump goes through here: a consumer that stopped receiving must never
// strand the pump goroutine.
func trySend[T any](ctx context.Context, out chan<- repository.Snapshot[T], snap repository.Snapshot[T]) bool {
	select {
	case out <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}

func collectSnapshot[T any](iter *firestore.DocumentIterator, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	defer iter.Stop()

	var data []T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate snapshot documents")
		}

		item, err := decode(snap)
		if err != nil {
			return nil, err
		}
		data = append(data, item)
	}

	return data, nil
}
