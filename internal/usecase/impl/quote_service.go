package impl

import (
	"context"
	"sync"
	"time"

	"tourquote/config"
	"tourquote/internal/domain/entity"
	apperrors "tourquote/internal/domain/errors"
	"tourquote/internal/domain/pricing"
	"tourquote/internal/domain/repository"
	"tourquote/internal/domain/service"
	"tourquote/internal/errors"
	"tourquote/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMaxQuoteSessions = 100

// quoteService keeps quote trees in session state only; they are never
// written to the catalog store.
type quoteService struct {
	productRepo  repository.ProductRepository
	cityRepo     repository.CityRepository
	categoryRepo repository.CategoryRepository
	exporter     service.QuoteExporter
	maxSessions  int

	mu     sync.Mutex
	quotes map[uuid.UUID]*entity.Quote
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CityRepo     repository.CityRepository
	CategoryRepo repository.CategoryRepository
	Exporter     service.QuoteExporter
	Config       *config.Config
}

// NewQuoteService creates a new quote service instance
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	maxSessions := defaultMaxQuoteSessions
	if params.Config != nil && params.Config.Quote != nil && params.Config.Quote.MaxSessions > 0 {
		maxSessions = params.Config.Quote.MaxSessions
	}

	return &quoteService{
		productRepo:  params.ProductRepo,
		cityRepo:     params.CityRepo,
		categoryRepo: params.CategoryRepo,
		exporter:     params.Exporter,
		maxSessions:  maxSessions,
		quotes:       make(map[uuid.UUID]*entity.Quote),
	}
}

// CreateQuote starts a new quote session with one empty day
func (s *quoteService) CreateQuote(_ context.Context) (*entity.Quote, error) {
	now := time.Now()
	q := &entity.Quote{
		ID:        uuid.New(),
		Days:      []*entity.QuoteDay{{ID: uuid.New()}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictOldestLocked()
	s.quotes[q.ID] = q

	return cloneQuote(q), nil
}

// GetQuote retrieves a quote session by ID
func (s *quoteService) GetQuote(_ context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.quoteLocked(quoteID)
	if err != nil {
		return nil, err
	}

	return cloneQuote(q), nil
}

// UpdateInfo sets the quote header, clearing a city that no longer belongs to
// the selected country
func (s *quoteService) UpdateInfo(ctx context.Context, quoteID uuid.UUID, input usecase.QuoteInfoInput) (*entity.Quote, error) {
	if input.Adults < 0 || input.Children < 0 || input.Infants < 0 {
		return nil, apperrors.ErrValidationFailed.WithDetails("party counts must not be negative")
	}

	cityID, err := s.resolveCity(ctx, input.CountryID, input.CityID)
	if err != nil {
		return nil, err
	}

	return s.mutate(quoteID, func(q *entity.Quote) error {
		q.Info = entity.QuoteInfo{
			CustomerName: input.CustomerName,
			CountryID:    input.CountryID,
			CityID:       cityID,
			Pax: entity.Pax{
				Adults:   input.Adults,
				Children: input.Children,
				Infants:  input.Infants,
			},
		}

		return nil
	})
}

// AddDay appends an empty day to the itinerary
func (s *quoteService) AddDay(_ context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	return s.mutate(quoteID, func(q *entity.Quote) error {
		q.Days = append(q.Days, &entity.QuoteDay{ID: uuid.New()})

		return nil
	})
}

// RemoveDay removes a day; the last remaining day cannot be removed
func (s *quoteService) RemoveDay(_ context.Context, quoteID, dayID uuid.UUID) (*entity.Quote, error) {
	return s.mutate(quoteID, func(q *entity.Quote) error {
		if len(q.Days) <= 1 {
			return apperrors.ErrLastDayRemoval
		}

		for i, day := range q.Days {
			if day.ID == dayID {
				q.Days = append(q.Days[:i], q.Days[i+1:]...)

				return nil
			}
		}

		return apperrors.ErrDayNotFound
	})
}

// AddItem adds a catalog product to a day with derived quantity and price
func (s *quoteService) AddItem(ctx context.Context, quoteID, dayID uuid.UUID, productID string) (*entity.Quote, error) {
	snapshot, err := s.snapshotProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(quoteID, func(q *entity.Quote) error {
		day := q.Day(dayID)
		if day == nil {
			return apperrors.ErrDayNotFound
		}

		quantity, appliedPrice := pricing.Derive(snapshot, q.Info.Pax)
		day.Items = append(day.Items, &entity.QuoteItem{
			ID:           uuid.New(),
			Product:      snapshot,
			Quantity:     quantity,
			AppliedPrice: appliedPrice,
		})

		return nil
	})
}

// UpdateItem edits an item's quantity or applied price. Totals of per-person
// items keep recomputing from pax regardless of these fields.
func (s *quoteService) UpdateItem(_ context.Context, quoteID, dayID, itemID uuid.UUID, input usecase.ItemUpdateInput) (*entity.Quote, error) {
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, apperrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	if input.AppliedPrice != nil && *input.AppliedPrice < 0 {
		return nil, apperrors.ErrValidationFailed.WithDetails("applied price must not be negative")
	}

	return s.mutate(quoteID, func(q *entity.Quote) error {
		day := q.Day(dayID)
		if day == nil {
			return apperrors.ErrDayNotFound
		}
		item := day.Item(itemID)
		if item == nil {
			return apperrors.ErrItemNotFound
		}

		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.AppliedPrice != nil {
			item.AppliedPrice = *input.AppliedPrice
		}

		return nil
	})
}

// RemoveItem removes an item from a day
func (s *quoteService) RemoveItem(_ context.Context, quoteID, dayID, itemID uuid.UUID) (*entity.Quote, error) {
	return s.mutate(quoteID, func(q *entity.Quote) error {
		day := q.Day(dayID)
		if day == nil {
			return apperrors.ErrDayNotFound
		}

		for i, item := range day.Items {
			if item.ID == itemID {
				day.Items = append(day.Items[:i], day.Items[i+1:]...)

				return nil
			}
		}

		return apperrors.ErrItemNotFound
	})
}

// ExportText renders the quote as a plain-text summary
func (s *quoteService) ExportText(_ context.Context, quoteID uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.quoteLocked(quoteID)
	if err != nil {
		return "", err
	}

	return s.exporter.ExportText(q), nil
}

// ExportCSV renders the quote as a CSV download
func (s *quoteService) ExportCSV(_ context.Context, quoteID uuid.UUID) (*usecase.CSVExport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.quoteLocked(quoteID)
	if err != nil {
		return nil, err
	}

	return &usecase.CSVExport{
		FileName: s.exporter.CSVFileName(q),
		Data:     s.exporter.ExportCSV(q),
	}, nil
}

// mutate applies fn to the quote under the lock and recomputes the whole
// totals tree before the new state becomes observable.
func (s *quoteService) mutate(quoteID uuid.UUID, fn func(q *entity.Quote) error) (*entity.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.quoteLocked(quoteID)
	if err != nil {
		return nil, err
	}

	if err := fn(q); err != nil {
		return nil, err
	}

	pricing.Recompute(q)
	q.UpdatedAt = time.Now()

	return cloneQuote(q), nil
}

func (s *quoteService) quoteLocked(quoteID uuid.UUID) (*entity.Quote, error) {
	q, ok := s.quotes[quoteID]
	if !ok {
		return nil, apperrors.ErrQuoteNotFound
	}

	return q, nil
}

// evictOldestLocked keeps the session map bounded by dropping the oldest
// quote once the cap is reached.
func (s *quoteService) evictOldestLocked() {
	if len(s.quotes) < s.maxSessions {
		return
	}

	var oldest *entity.Quote
	for _, q := range s.quotes {
		if oldest == nil || q.CreatedAt.Before(oldest.CreatedAt) {
			oldest = q
		}
	}
	if oldest != nil {
		delete(s.quotes, oldest.ID)
	}
}

// resolveCity validates the selected city against the selected country and
// clears a city that no longer matches.
func (s *quoteService) resolveCity(ctx context.Context, countryID, cityID string) (string, error) {
	if cityID == "" {
		return "", nil
	}

	city, err := s.cityRepo.FindCityByID(ctx, cityID)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return "", nil
		}

		return "", apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	if city.CountryID != countryID {
		return "", nil
	}

	return cityID, nil
}

// snapshotProduct fetches the product and freezes the fields the item needs
// for its lifetime.
func (s *quoteService) snapshotProduct(ctx context.Context, productID string) (entity.ProductSnapshot, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.ProductSnapshot{}, apperrors.ErrProductNotFound
		}

		return entity.ProductSnapshot{}, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
	}

	categoryName := ""
	if product.CategoryID != "" {
		category, err := s.categoryRepo.FindCategoryByID(ctx, product.CategoryID)
		switch {
		case err == nil:
			categoryName = category.Name
		case errors.Is(err, repository.ErrCategoryNotFound):
			// Dangling reference: the item lands in the uncategorized bucket.
		default:
			return entity.ProductSnapshot{}, apperrors.ErrStoreReadFailed.WithDetails(err.Error())
		}
	}

	return entity.ProductSnapshot{
		ProductID:    product.ID,
		Name:         product.Name,
		CategoryName: categoryName,
		PricingMode:  product.PricingMode,
		PriceAdult:   product.PriceAdult,
		PriceChild:   product.PriceChild,
		PriceInfant:  product.PriceInfant,
		PriceUnit:    product.PriceUnit,
	}, nil
}

// cloneQuote deep-copies a quote so callers never share mutable state with
// the session map.
func cloneQuote(q *entity.Quote) *entity.Quote {
	clone := *q
	clone.Days = make([]*entity.QuoteDay, len(q.Days))
	for i, day := range q.Days {
		dayClone := *day
		dayClone.Items = make([]*entity.QuoteItem, len(day.Items))
		for j, item := range day.Items {
			itemClone := *item
			dayClone.Items[j] = &itemClone
		}
		clone.Days[i] = &dayClone
	}

	return &clone
}
