// Package impl contains the use case implementations.
package impl

import (
	"context"
	"strings"
	"sync"

	apperrors "tourquote/internal/domain/errors"
	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"
	"tourquote/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	countryRepo  repository.CountryRepository
	cityRepo     repository.CityRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	batcher      repository.CatalogBatcher

	// Cascades are the only multi-step writes; they never interleave.
	cascadeMu sync.Mutex
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CountryRepo  repository.CountryRepository
	CityRepo     repository.CityRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Batcher      repository.CatalogBatcher
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		countryRepo:  params.CountryRepo,
		cityRepo:     params.CityRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		batcher:      params.Batcher,
	}
}

// ListCountries retrieves all countries
func (s *catalogService) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return countries, nil
}

// CreateCountry creates a country with the given name
func (s *catalogService) CreateCountry(ctx context.Context, name string) (*entity.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("country name is required")
	}

	country := &entity.Country{Name: name}
	if err := s.countryRepo.CreateCountry(ctx, country); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return country, nil
}

// RenameCountry changes a country's name
func (s *catalogService) RenameCountry(ctx context.Context, id, name string) (*entity.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("country name is required")
	}

	country, err := s.findCountry(ctx, id)
	if err != nil {
		return nil, err
	}

	country.Name = name
	if err := s.countryRepo.UpdateCountry(ctx, country); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return country, nil
}

// ListCities retrieves all cities
func (s *catalogService) ListCities(ctx context.Context) ([]*entity.City, error) {
	cities, err := s.cityRepo.ListCities(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return cities, nil
}

// CreateCity creates a city under an existing country
func (s *catalogService) CreateCity(ctx context.Context, name, countryID string) (*entity.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("city name is required")
	}
	if countryID == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("country is required")
	}

	if _, err := s.findCountry(ctx, countryID); err != nil {
		return nil, err
	}

	city := &entity.City{Name: name, CountryID: countryID}
	if err := s.cityRepo.CreateCity(ctx, city); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return city, nil
}

// UpdateCity changes a city's name and owning country
func (s *catalogService) UpdateCity(ctx context.Context, id, name, countryID string) (*entity.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("city name is required")
	}
	if countryID == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("country is required")
	}

	city, err := s.findCity(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.findCountry(ctx, countryID); err != nil {
		return nil, err
	}

	city.Name = name
	city.CountryID = countryID
	if err := s.cityRepo.UpdateCity(ctx, city); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return city, nil
}

// ListCategories retrieves all categories
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return categories, nil
}

// CreateCategory creates a category with the given name
func (s *catalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return category, nil
}

// RenameCategory changes a category's name
func (s *catalogService) RenameCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return category, nil
}

// ListProducts retrieves all products
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return products, nil
}

// CreateProduct creates a product under an existing city and category
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product, err := s.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return product, nil
}

// UpdateProduct overwrites a product's editable fields
func (s *catalogService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.findProduct(ctx, id); err != nil {
		return nil, err
	}

	product, err := s.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	product.ID = id
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return product, nil
}

// DeleteProduct removes a single product, no cascade
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return apperrors.ErrStoreWriteFailed.WithDetails(err.Error())
	}

	return nil
}

// buildProduct validates the input and its references and assembles the entity.
func (s *catalogService) buildProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.CityID == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("city is required")
	}
	if input.CategoryID == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("category is required")
	}
	if !input.PricingMode.IsValid() {
		return nil, apperrors.ErrValidationFailed.WithDetails("unknown pricing mode: " + input.PricingMode.String())
	}
	if input.PriceAdult < 0 || input.PriceChild < 0 || input.PriceInfant < 0 || input.PriceUnit < 0 {
		return nil, apperrors.ErrValidationFailed.WithDetails("prices must not be negative")
	}

	if _, err := s.findCity(ctx, input.CityID); err != nil {
		return nil, err
	}
	if _, err := s.findCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	return &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		URL:         strings.TrimSpace(input.URL),
		CityID:      input.CityID,
		CategoryID:  input.CategoryID,
		PricingMode: input.PricingMode,
		PriceAdult:  input.PriceAdult,
		PriceChild:  input.PriceChild,
		PriceInfant: input.PriceInfant,
		PriceUnit:   input.PriceUnit,
	}, nil
}

func (s *catalogService) findCountry(ctx context.Context, id string) (*entity.Country, error) {
	country, err := s.countryRepo.FindCountryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, apperrors.ErrCountryNotFound
		}

		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return country, nil
}

func (s *catalogService) findCity(ctx context.Context, id string) (*entity.City, error) {
	city, err := s.cityRepo.FindCityByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, apperrors.ErrCityNotFound
		}

		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return city, nil
}

func (s *catalogService) findCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}

		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return category, nil
}

func (s *catalogService) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}

		return nil, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	return product, nil
}
