package firestore

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"
	"tourquote/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type cityRepository struct {
	client *firestore.Client
}

// NewCityRepository creates the Firestore-backed city repository.
func NewCityRepository(client *firestore.Client) repository.CityRepository {
	return &cityRepository{client: client}
}

func (r *cityRepository) CreateCity(ctx context.Context, city *entity.City) error {
	docRef := r.client.Collection(collCities).NewDoc()
	if _, err := docRef.Create(ctx, model.CityModelFromEntity(city)); err != nil {
		return errors.Wrap(err, "failed to create city document")
	}
	city.ID = docRef.ID

	return nil
}

func (r *cityRepository) UpdateCity(ctx context.Context, city *entity.City) error {
	docRef := r.client.Collection(collCities).Doc(city.ID)
	if _, err := docRef.Set(ctx, model.CityModelFromEntity(city)); err != nil {
		return errors.Wrap(err, "failed to update city document")
	}

	return nil
}

func (r *cityRepository) FindCityByID(ctx context.Context, id string) (*entity.City, error) {
	snap, err := r.client.Collection(collCities).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to get city document")
	}

	var m model.CityModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode city document")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *cityRepository) ListCities(ctx context.Context) ([]*entity.City, error) {
	iter := r.client.Collection(collCities).OrderBy("name", firestore.Asc).Documents(ctx)

	return r.collect(iter)
}

func (r *cityRepository) FindCitiesByCountry(ctx context.Context, countryID string) ([]*entity.City, error) {
	iter := r.client.Collection(collCities).Where("countryId", "==", countryID).Documents(ctx)

	return r.collect(iter)
}

func (r *cityRepository) collect(iter *firestore.DocumentIterator) ([]*entity.City, error) {
	defer iter.Stop()

	var cities []*entity.City
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate cities")
		}

		var m model.CityModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode city document")
		}
		cities = append(cities, m.ToEntity(snap.Ref.ID))
	}

	return cities, nil
}
