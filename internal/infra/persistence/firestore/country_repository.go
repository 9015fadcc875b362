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

type countryRepository struct {
	client *firestore.Client
}

// NewCountryRepository creates the Firestore-backed country repository.
func NewCountryRepository(client *firestore.Client) repository.CountryRepository {
	return &countryRepository{client: client}
}

func (r *countryRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	docRef := r.client.Collection(collCountries).NewDoc()
	if _, err := docRef.Create(ctx, model.CountryModelFromEntity(country)); err != nil {
		return errors.Wrap(err, "failed to create country document")
	}
	country.ID = docRef.ID

	return nil
}

func (r *countryRepository) UpdateCountry(ctx context.Context, country *entity.Country) error {
	docRef := r.client.Collection(collCountries).Doc(country.ID)
	if _, err := docRef.Set(ctx, model.CountryModelFromEntity(country)); err != nil {
		return errors.Wrap(err, "failed to update country document")
	}

	return nil
}

func (r *countryRepository) FindCountryByID(ctx context.Context, id string) (*entity.Country, error) {
	snap, err := r.client.Collection(collCountries).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to get country document")
	}

	var m model.CountryModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode country document")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *countryRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	iter := r.client.Collection(collCountries).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var countries []*entity.Country
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate countries")
		}

		var m model.CountryModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode country document")
		}
		countries = append(countries, m.ToEntity(snap.Ref.ID))
	}

	return countries, nil
}
