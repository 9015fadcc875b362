// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"tourquote/internal/domain/entity"
)

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	URL         string             `json:"url"`
	CityID      string             `json:"city_id" validate:"required"`
	CategoryID  string             `json:"category_id" validate:"required"`
	PricingMode entity.PricingMode `json:"pricing_mode" validate:"required"`
	PriceAdult  float64            `json:"price_adult" validate:"gte=0"`
	PriceChild  float64            `json:"price_child" validate:"gte=0"`
	PriceInfant float64            `json:"price_infant" validate:"gte=0"`
	PriceUnit   float64            `json:"price_unit" validate:"gte=0"`
}

// CascadeResult reports what a cascading delete removed, per collection.
type CascadeResult struct {
	Products   int `json:"products"`
	Cities     int `json:"cities"`
	Countries  int `json:"countries"`
	Categories int `json:"categories"`
}

// CatalogUsecase is the admin console surface: CRUD over the four linked
// collections with referential-integrity cascades on parent deletion.
type CatalogUsecase interface {
	// ListCountries retrieves all countries.
	ListCountries(ctx context.Context) ([]*entity.Country, error)

	// CreateCountry creates a country with the given name.
	CreateCountry(ctx context.Context, name string) (*entity.Country, error)

	// RenameCountry changes a country's name.
	RenameCountry(ctx context.Context, id, name string) (*entity.Country, error)

	// DeleteCountry removes a country together with all of its cities and all
	// products referencing those cities, as one atomic batch.
	DeleteCountry(ctx context.Context, id string) (*CascadeResult, error)

	// ListCities retrieves all cities.
	ListCities(ctx context.Context) ([]*entity.City, error)

	// CreateCity creates a city under an existing country.
	CreateCity(ctx context.Context, name, countryID string) (*entity.City, error)

	// UpdateCity changes a city's name and owning country.
	UpdateCity(ctx context.Context, id, name, countryID string) (*entity.City, error)

	// DeleteCity removes a city and all products referencing it atomically.
	DeleteCity(ctx context.Context, id string) (*CascadeResult, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory creates a category with the given name.
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)

	// RenameCategory changes a category's name.
	RenameCategory(ctx context.Context, id, name string) (*entity.Category, error)

	// DeleteCategory removes a category and all products referencing it atomically.
	DeleteCategory(ctx context.Context, id string) (*CascadeResult, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct creates a product under an existing city and category.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites a product's editable fields.
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a single product. No cascade.
	DeleteProduct(ctx context.Context, id string) error
}
