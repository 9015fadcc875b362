package repository

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/errors"
)

// ErrCityNotFound is returned when a city document does not exist.
var ErrCityNotFound = errors.New("city not found")

// CityRepository defines the interface for city catalog operations.
type CityRepository interface {
	// CreateCity persists a new city and fills in its document ID.
	CreateCity(ctx context.Context, city *entity.City) error

	// UpdateCity overwrites an existing city document.
	UpdateCity(ctx context.Context, city *entity.City) error

	// FindCityByID retrieves a city by its document ID.
	FindCityByID(ctx context.Context, id string) (*entity.City, error)

	// ListCities retrieves all cities ordered by name.
	ListCities(ctx context.Context) ([]*entity.City, error)

	// FindCitiesByCountry retrieves all cities referencing the given country.
	FindCitiesByCountry(ctx context.Context, countryID string) ([]*entity.City, error)
}
