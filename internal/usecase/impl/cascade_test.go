package impl

import (
	"context"
	"strconv"
	"testing"

	apperrors "tourquote/internal/domain/errors"
	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	mockRepo "tourquote/internal/mocks/repository"
	"tourquote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	countryRepo  *mockRepo.MockCountryRepository
	cityRepo     *mockRepo.MockCityRepository
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	batcher      *mockRepo.MockCatalogBatcher
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogMocks) {
	t.Helper()

	m := &catalogMocks{
		countryRepo:  mockRepo.NewMockCountryRepository(t),
		cityRepo:     mockRepo.NewMockCityRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		batcher:      mockRepo.NewMockCatalogBatcher(t),
	}
	service := NewCatalogService(CatalogServiceParams{
		CountryRepo:  m.countryRepo,
		CityRepo:     m.cityRepo,
		CategoryRepo: m.categoryRepo,
		ProductRepo:  m.productRepo,
		Batcher:      m.batcher,
	})

	return service, m
}

func products(cityID string, n int) []*entity.Product {
	out := make([]*entity.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Product{ID: cityID + "-p" + strconv.Itoa(i), CityID: cityID})
	}

	return out
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestDeleteCountry_CascadesCitiesAndProducts(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr", Name: "대한민국"}, nil)
	m.cityRepo.EXPECT().
		FindCitiesByCountry(ctx, "kr").
		Return([]*entity.City{
			{ID: "seoul", CountryID: "kr"},
			{ID: "busan", CountryID: "kr"},
		}, nil)
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, []string{"seoul", "busan"}).
		Return(products("seoul", 3), nil)
	m.batcher.EXPECT().Capacity().Return(500)
	m.batcher.EXPECT().
		DeleteAll(ctx, repository.DeleteSet{
			ProductIDs: []string{"seoul-p0", "seoul-p1", "seoul-p2"},
			CityIDs:    []string{"seoul", "busan"},
			CountryIDs: []string{"kr"},
		}).
		Return(nil)

	result, err := service.DeleteCountry(ctx, "kr")
	require.NoError(t, err)
	assert.Equal(t, &usecase.CascadeResult{Products: 3, Cities: 2, Countries: 1}, result)
}

func TestDeleteCountry_ChunksProductLookups(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	cities := make([]*entity.City, 0, 65)
	cityIDs := make([]string, 0, 65)
	for i := 0; i < 65; i++ {
		id := "city-" + strconv.Itoa(i)
		cities = append(cities, &entity.City{ID: id, CountryID: "kr"})
		cityIDs = append(cityIDs, id)
	}

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr"}, nil)
	m.cityRepo.EXPECT().
		FindCitiesByCountry(ctx, "kr").
		Return(cities, nil)

	// 65 cities resolve in chunks of the store's 30-ID disjunction limit.
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, cityIDs[0:30]).
		Return(products("a", 2), nil)
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, cityIDs[30:60]).
		Return(nil, nil)
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, cityIDs[60:65]).
		Return(products("b", 1), nil)

	m.batcher.EXPECT().Capacity().Return(500)
	m.batcher.EXPECT().
		DeleteAll(ctx, repository.DeleteSet{
			ProductIDs: []string{"a-p0", "a-p1", "b-p0"},
			CityIDs:    cityIDs,
			CountryIDs: []string{"kr"},
		}).
		Return(nil)

	result, err := service.DeleteCountry(ctx, "kr")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Products)
	assert.Equal(t, 65, result.Cities)
}

func TestDeleteCountry_RootNotFound(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "missing").
		Return(nil, repository.ErrCountryNotFound)

	result, err := service.DeleteCountry(ctx, "missing")
	assert.Nil(t, result)
	assert.Equal(t, "COUNTRY_NOT_FOUND", appErrorCode(t, err))
}

func TestDeleteCountry_ResolutionFailureAborts(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr"}, nil)
	m.cityRepo.EXPECT().
		FindCitiesByCountry(ctx, "kr").
		Return(nil, errors.New("listener dropped"))

	result, err := service.DeleteCountry(ctx, "kr")
	assert.Nil(t, result)
	assert.Equal(t, "CASCADE_DELETE_FAILED", appErrorCode(t, err))
}

func TestDeleteCountry_CommitFailureAborts(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr"}, nil)
	m.cityRepo.EXPECT().
		FindCitiesByCountry(ctx, "kr").
		Return([]*entity.City{{ID: "seoul", CountryID: "kr"}}, nil)
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, []string{"seoul"}).
		Return(products("seoul", 1), nil)
	m.batcher.EXPECT().Capacity().Return(500)
	m.batcher.EXPECT().
		DeleteAll(ctx, repository.DeleteSet{
			ProductIDs: []string{"seoul-p0"},
			CityIDs:    []string{"seoul"},
			CountryIDs: []string{"kr"},
		}).
		Return(errors.New("commit rejected"))

	result, err := service.DeleteCountry(ctx, "kr")
	assert.Nil(t, result)
	assert.Equal(t, "CASCADE_DELETE_FAILED", appErrorCode(t, err))
}

func TestDeleteCountry_RejectsOverCapacitySet(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.countryRepo.EXPECT().
		FindCountryByID(ctx, "kr").
		Return(&entity.Country{ID: "kr"}, nil)
	m.cityRepo.EXPECT().
		FindCitiesByCountry(ctx, "kr").
		Return([]*entity.City{{ID: "seoul", CountryID: "kr"}}, nil)
	m.productRepo.EXPECT().
		FindProductsByCityIDs(ctx, []string{"seoul"}).
		Return(products("seoul", 499), nil)
	m.batcher.EXPECT().Capacity().Return(500)
	// 499 products + 1 city + 1 country = 501 writes: DeleteAll is never called.

	result, err := service.DeleteCountry(ctx, "kr")
	assert.Nil(t, result)
	assert.Equal(t, "CASCADE_CAPACITY_EXCEEDED", appErrorCode(t, err))
}

func TestDeleteCity_CascadesProducts(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.cityRepo.EXPECT().
		FindCityByID(ctx, "seoul").
		Return(&entity.City{ID: "seoul", CountryID: "kr"}, nil)
	m.productRepo.EXPECT().
		FindProductsByCity(ctx, "seoul").
		Return(products("seoul", 2), nil)
	m.batcher.EXPECT().Capacity().Return(500)
	m.batcher.EXPECT().
		DeleteAll(ctx, repository.DeleteSet{
			ProductIDs: []string{"seoul-p0", "seoul-p1"},
			CityIDs:    []string{"seoul"},
		}).
		Return(nil)

	result, err := service.DeleteCity(ctx, "seoul")
	require.NoError(t, err)
	assert.Equal(t, &usecase.CascadeResult{Products: 2, Cities: 1}, result)
}

func TestDeleteCategory_CascadesProducts(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.categoryRepo.EXPECT().
		FindCategoryByID(ctx, "tour").
		Return(&entity.Category{ID: "tour", Name: "투어"}, nil)
	m.productRepo.EXPECT().
		FindProductsByCategory(ctx, "tour").
		Return(products("seoul", 4), nil)
	m.batcher.EXPECT().Capacity().Return(500)
	m.batcher.EXPECT().
		DeleteAll(ctx, repository.DeleteSet{
			ProductIDs:  []string{"seoul-p0", "seoul-p1", "seoul-p2", "seoul-p3"},
			CategoryIDs: []string{"tour"},
		}).
		Return(nil)

	result, err := service.DeleteCategory(ctx, "tour")
	require.NoError(t, err)
	assert.Equal(t, &usecase.CascadeResult{Products: 4, Categories: 1}, result)
}

func TestDeleteProduct_NoCascade(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		FindProductByID(ctx, "p1").
		Return(&entity.Product{ID: "p1"}, nil)
	m.productRepo.EXPECT().
		DeleteProduct(ctx, "p1").
		Return(nil)

	require.NoError(t, service.DeleteProduct(ctx, "p1"))
}
