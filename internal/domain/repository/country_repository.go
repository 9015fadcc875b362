// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/errors"
)

// ErrCountryNotFound is returned when a country document does not exist.
var ErrCountryNotFound = errors.New("country not found")

// CountryRepository defines the interface for country catalog operations.
type CountryRepository interface {
	// CreateCountry persists a new country and fills in its document ID.
	CreateCountry(ctx context.Context, country *entity.Country) error

	// UpdateCountry overwrites an existing country document.
	UpdateCountry(ctx context.Context, country *entity.Country) error

	// FindCountryByID retrieves a country by its document ID.
	FindCountryByID(ctx context.Context, id string) (*entity.Country, error)

	// ListCountries retrieves all countries ordered by name.
	ListCountries(ctx context.Context) ([]*entity.Country, error)
}
