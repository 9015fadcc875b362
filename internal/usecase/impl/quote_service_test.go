package impl

import (
	"context"
	"testing"

	"tourquote/config"
	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/infra/export"
	mockRepo "tourquote/internal/mocks/repository"
	"tourquote/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteMocks struct {
	productRepo  *mockRepo.MockProductRepository
	cityRepo     *mockRepo.MockCityRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func newQuoteService(t *testing.T) (usecase.QuoteUsecase, *quoteMocks) {
	t.Helper()

	m := &quoteMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		cityRepo:     mockRepo.NewMockCityRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}
	service := NewQuoteService(QuoteServiceParams{
		ProductRepo:  m.productRepo,
		CityRepo:     m.cityRepo,
		CategoryRepo: m.categoryRepo,
		Exporter:     export.NewQuoteExporter(),
		Config:       &config.Config{},
	})

	return service, m
}

func setPax(t *testing.T, service usecase.QuoteUsecase, quoteID uuid.UUID, adults, children, infants int) *entity.Quote {
	t.Helper()

	q, err := service.UpdateInfo(context.Background(), quoteID, usecase.QuoteInfoInput{
		Adults:   adults,
		Children: children,
		Infants:  infants,
	})
	require.NoError(t, err)

	return q
}

func expectProduct(m *quoteMocks, product *entity.Product, categoryName string) {
	m.productRepo.EXPECT().
		FindProductByID(context.Background(), product.ID).
		Return(product, nil)
	if product.CategoryID != "" {
		m.categoryRepo.EXPECT().
			FindCategoryByID(context.Background(), product.CategoryID).
			Return(&entity.Category{ID: product.CategoryID, Name: categoryName}, nil)
	}
}

func TestCreateQuote_StartsWithOneDay(t *testing.T) {
	service, _ := newQuoteService(t)

	q, err := service.CreateQuote(context.Background())
	require.NoError(t, err)
	require.Len(t, q.Days, 1)
	assert.Empty(t, q.Days[0].Items)
	assert.Equal(t, 0.0, q.GrandTotal)
}

func TestRemoveDay_LastDayRejected(t *testing.T) {
	service, _ := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	_, err = service.RemoveDay(ctx, q.ID, q.Days[0].ID)
	assert.Equal(t, "LAST_DAY_REMOVAL", appErrorCode(t, err))

	q, err = service.AddDay(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, q.Days, 2)

	q, err = service.RemoveDay(ctx, q.ID, q.Days[0].ID)
	require.NoError(t, err)
	assert.Len(t, q.Days, 1)
}

func TestAddItem_PerPersonDerivation(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)
	setPax(t, service, q.ID, 2, 1, 0)

	expectProduct(m, &entity.Product{
		ID:          "tour-1",
		Name:        "시내 투어",
		CategoryID:  "tour",
		PricingMode: entity.PricingPerPerson,
		PriceAdult:  100,
		PriceChild:  50,
	}, "투어")

	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "tour-1")
	require.NoError(t, err)

	item := q.Days[0].Items[0]
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, 83.0, item.AppliedPrice)
	assert.Equal(t, 250.0, item.Total)
	assert.Equal(t, "투어", item.Product.CategoryName)
	assert.Equal(t, 250.0, q.GrandTotal)
}

func TestAddItem_PerUnitDefaults(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	expectProduct(m, &entity.Product{
		ID:          "pickup-1",
		Name:        "공항 픽업",
		CategoryID:  "transfer",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   40000,
	}, "교통")

	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "pickup-1")
	require.NoError(t, err)

	item := q.Days[0].Items[0]
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 40000.0, item.AppliedPrice)
	assert.Equal(t, 40000.0, item.Total)
}

func TestPaxChange_RecomputesPerPersonOnly(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)
	setPax(t, service, q.ID, 2, 0, 0)

	expectProduct(m, &entity.Product{
		ID:          "tour-1",
		Name:        "시내 투어",
		PricingMode: entity.PricingPerPerson,
		PriceAdult:  100,
	}, "")
	expectProduct(m, &entity.Product{
		ID:          "pickup-1",
		Name:        "공항 픽업",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   40000,
	}, "")

	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "tour-1")
	require.NoError(t, err)
	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "pickup-1")
	require.NoError(t, err)
	assert.Equal(t, 40200.0, q.GrandTotal)

	q = setPax(t, service, q.ID, 3, 1, 1)

	// Per-person item follows pax; per-unit item is untouched.
	assert.Equal(t, 300.0, q.Days[0].Items[0].Total)
	assert.Equal(t, 40000.0, q.Days[0].Items[1].Total)
	assert.Equal(t, 40300.0, q.GrandTotal)
}

func TestUpdateItem_PerUnitEdits(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	expectProduct(m, &entity.Product{
		ID:          "pickup-1",
		Name:        "공항 픽업",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   10,
	}, "")

	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "pickup-1")
	require.NoError(t, err)

	quantity := 2
	price := 10.5
	q, err = service.UpdateItem(ctx, q.ID, q.Days[0].ID, q.Days[0].Items[0].ID, usecase.ItemUpdateInput{
		Quantity:     &quantity,
		AppliedPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, 21.0, q.Days[0].Items[0].Total)
	assert.Equal(t, 21.0, q.GrandTotal)
}

func TestUpdateItem_RejectsNegativeQuantity(t *testing.T) {
	service, _ := newQuoteService(t)

	negative := -1
	_, err := service.UpdateItem(context.Background(), uuid.New(), uuid.New(), uuid.New(), usecase.ItemUpdateInput{
		Quantity: &negative,
	})
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestRemoveItem_RecomputesTotals(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	expectProduct(m, &entity.Product{
		ID:          "pickup-1",
		Name:        "공항 픽업",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   100,
	}, "")

	q, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "pickup-1")
	require.NoError(t, err)
	require.Equal(t, 100.0, q.GrandTotal)

	q, err = service.RemoveItem(ctx, q.ID, q.Days[0].ID, q.Days[0].Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, q.Days[0].Items)
	assert.Equal(t, 0.0, q.GrandTotal)
}

func TestUpdateInfo_ClearsCityFromOtherCountry(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	// The selected city belongs to Japan, the selected country is Korea.
	m.cityRepo.EXPECT().
		FindCityByID(ctx, "tokyo").
		Return(&entity.City{ID: "tokyo", CountryID: "jp"}, nil)

	q, err = service.UpdateInfo(ctx, q.ID, usecase.QuoteInfoInput{
		CountryID: "kr",
		CityID:    "tokyo",
		Adults:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "kr", q.Info.CountryID)
	assert.Empty(t, q.Info.CityID)
}

func TestUpdateInfo_KeepsMatchingCity(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	m.cityRepo.EXPECT().
		FindCityByID(ctx, "seoul").
		Return(&entity.City{ID: "seoul", CountryID: "kr"}, nil)

	q, err = service.UpdateInfo(ctx, q.ID, usecase.QuoteInfoInput{
		CountryID: "kr",
		CityID:    "seoul",
	})
	require.NoError(t, err)
	assert.Equal(t, "seoul", q.Info.CityID)
}

func TestAddItem_ProductGone(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	m.productRepo.EXPECT().
		FindProductByID(ctx, "gone").
		Return(nil, repository.ErrProductNotFound)

	_, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "gone")
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErrorCode(t, err))
}

func TestAddItem_StoreReadFailure(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	m.productRepo.EXPECT().
		FindProductByID(ctx, "p1").
		Return(nil, errors.New("unavailable"))

	_, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "p1")
	assert.Equal(t, "STORE_READ_FAILED", appErrorCode(t, err))
}

func TestGetQuote_UnknownSession(t *testing.T) {
	service, _ := newQuoteService(t)

	_, err := service.GetQuote(context.Background(), uuid.New())
	assert.Equal(t, "QUOTE_NOT_FOUND", appErrorCode(t, err))
}

func TestExportCSV_FileNameAndPayload(t *testing.T) {
	service, m := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)
	_, err = service.UpdateInfo(ctx, q.ID, usecase.QuoteInfoInput{CustomerName: "홍길동", Adults: 1})
	require.NoError(t, err)

	expectProduct(m, &entity.Product{
		ID:          "pickup-1",
		Name:        "공항 픽업",
		PricingMode: entity.PricingPerUnit,
		PriceUnit:   10.5,
	}, "")
	_, err = service.AddItem(ctx, q.ID, q.Days[0].ID, "pickup-1")
	require.NoError(t, err)

	csvExport, err := service.ExportCSV(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "홍길동_quote.csv", csvExport.FileName)
	assert.Contains(t, string(csvExport.Data), "공항 픽업")
}

func TestReturnedQuoteIsACopy(t *testing.T) {
	service, _ := newQuoteService(t)
	ctx := context.Background()

	q, err := service.CreateQuote(ctx)
	require.NoError(t, err)

	// Mutating the returned tree must not leak into the session state.
	q.Days[0].Items = append(q.Days[0].Items, &entity.QuoteItem{ID: uuid.New()})

	fresh, err := service.GetQuote(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Days[0].Items)
}
