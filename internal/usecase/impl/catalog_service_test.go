package impl

import (
	"context"
	"testing"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCountry(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		CreateCountry(ctx, mock.AnythingOfType("*entity.Country")).
		Run(func(_ context.Context, country *entity.Country) {
			country.ID = "kr"
		}).
		Return(nil)

	country, err := service.CreateCountry(ctx, "  대한민국 ")
	require.NoError(t, err)
	assert.Equal(t, "kr", country.ID)
	assert.Equal(t, "대한민국", country.Name)
}

func TestCreateCountry_EmptyNameBlockedLocally(t *testing.T) {
	service, _ := newCatalogService(t)

	// No repository expectation: validation failures never reach the store.
	country, err := service.CreateCountry(context.Background(), "   ")
	assert.Nil(t, country)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestCreateCountry_StoreWriteFailure(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		CreateCountry(ctx, mock.AnythingOfType("*entity.Country")).
		Return(errors.New("permission denied"))

	country, err := service.CreateCountry(ctx, "대한민국")
	assert.Nil(t, country)
	assert.Equal(t, "STORE_WRITE_FAILED", appErrorCode(t, err))
}

func TestCreateCity_RequiresExistingCountry(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "missing").
		Return(nil, repository.ErrCountryNotFound)

	city, err := service.CreateCity(ctx, "서울", "missing")
	assert.Nil(t, city)
	assert.Equal(t, "COUNTRY_NOT_FOUND", appErrorCode(t, err))
}

func TestCreateCity(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr"}, nil)
	m.cityRepo.EXPECT().
		CreateCity(ctx, mock.AnythingOfType("*entity.City")).
		Return(nil)

	city, err := service.CreateCity(ctx, "서울", "kr")
	require.NoError(t, err)
	assert.Equal(t, "서울", city.Name)
	assert.Equal(t, "kr", city.CountryID)
}

func TestCreateProduct_ValidatesReferencesAndMode(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	input := usecase.ProductInput{
		Name:        "시내 투어",
		CityID:      "seoul",
		CategoryID:  "tour",
		PricingMode: entity.PricingPerPerson,
		PriceAdult:  100000,
		PriceChild:  50000,
	}

	m.cityRepo.EXPECT().
		FindCityByID(ctx, "seoul").
		Return(&entity.City{ID: "seoul"}, nil)
	m.categoryRepo.EXPECT().
		FindCategoryByID(ctx, "tour").
		Return(&entity.Category{ID: "tour"}, nil)
	m.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.PricingPerPerson, product.PricingMode)
	assert.Equal(t, 100000.0, product.PriceAdult)
}

func TestCreateProduct_RejectsUnknownPricingMode(t *testing.T) {
	service, _ := newCatalogService(t)

	_, err := service.CreateProduct(context.Background(), usecase.ProductInput{
		Name:        "시내 투어",
		CityID:      "seoul",
		CategoryID:  "tour",
		PricingMode: "per_group",
	})
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestCreateProduct_RejectsNegativePrice(t *testing.T) {
	service, _ := newCatalogService(t)

	_, err := service.CreateProduct(context.Background(), usecase.ProductInput{
		Name:        "시내 투어",
		CityID:      "seoul",
		CategoryID:  "tour",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   -1,
	})
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestRenameCategory(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.categoryRepo.EXPECT().
		FindCategoryByID(ctx, "tour").
		Return(&entity.Category{ID: "tour", Name: "투어"}, nil)
	m.categoryRepo.EXPECT().
		UpdateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.RenameCategory(ctx, "tour", "프라이빗 투어")
	require.NoError(t, err)
	assert.Equal(t, "프라이빗 투어", category.Name)
}

func TestListProducts_StoreReadFailure(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		ListProducts(ctx).
		Return(nil, errors.New("unavailable"))

	list, err := service.ListProducts(ctx)
	assert.Nil(t, list)
	assert.Equal(t, "STORE_READ_FAILED", appErrorCode(t, err))
}
