package impl

import (
	"context"
	"strconv"

	apperrors "tourquote/internal/domain/errors"
	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"
	"tourquote/internal/usecase"
)

// cascadePlan is the output of the dependent-resolution phase: the full delete
// set for one atomic commit plus the per-collection counts reported back.
type cascadePlan struct {
	set    repository.DeleteSet
	result usecase.CascadeResult
}

// DeleteCountry removes a country, all of its cities and every product
// referencing those cities as one atomic batch.
func (s *catalogService) DeleteCountry(ctx context.Context, id string) (*usecase.CascadeResult, error) {
	s.cascadeMu.Lock()
	defer s.cascadeMu.Unlock()

	if _, err := s.findCountry(ctx, id); err != nil {
		return nil, err
	}

	plan, err := s.planCountryCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.commitCascade(ctx, plan)
}

// DeleteCity removes a city and every product referencing it atomically.
func (s *catalogService) DeleteCity(ctx context.Context, id string) (*usecase.CascadeResult, error) {
	s.cascadeMu.Lock()
	defer s.cascadeMu.Unlock()

	if _, err := s.findCity(ctx, id); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindProductsByCity(ctx, id)
	if err != nil {
		return nil, apperrors.ErrCascadeDeleteFailed.WithDetails(err.Error())
	}

	plan := &cascadePlan{}
	plan.set.ProductIDs = productIDs(products)
	plan.set.CityIDs = []string{id}
	plan.result.Products = len(products)
	plan.result.Cities = 1

	return s.commitCascade(ctx, plan)
}

// DeleteCategory removes a category and every product referencing it atomically.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) (*usecase.CascadeResult, error) {
	s.cascadeMu.Lock()
	defer s.cascadeMu.Unlock()

	if _, err := s.findCategory(ctx, id); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindProductsByCategory(ctx, id)
	if err != nil {
		return nil, apperrors.ErrCascadeDeleteFailed.WithDetails(err.Error())
	}

	plan := &cascadePlan{}
	plan.set.ProductIDs = productIDs(products)
	plan.set.CategoryIDs = []string{id}
	plan.result.Products = len(products)
	plan.result.Categories = 1

	return s.commitCascade(ctx, plan)
}

// planCountryCascade resolves the country's dependent cities and their
// dependent products. Product lookups are chunked at the store's disjunction
// limit; the chunks only split the reads, the resulting deletions still land
// in one commit.
func (s *catalogService) planCountryCascade(ctx context.Context, countryID string) (*cascadePlan, error) {
	cities, err := s.cityRepo.FindCitiesByCountry(ctx, countryID)
	if err != nil {
		return nil, apperrors.ErrCascadeDeleteFailed.WithDetails(err.Error())
	}

	cityIDs := make([]string, 0, len(cities))
	for _, city := range cities {
		cityIDs = append(cityIDs, city.ID)
	}

	plan := &cascadePlan{}
	for _, chunk := range chunkIDs(cityIDs, repository.MaxCityRefsPerLookup) {
		products, err := s.productRepo.FindProductsByCityIDs(ctx, chunk)
		if err != nil {
			return nil, apperrors.ErrCascadeDeleteFailed.WithDetails(err.Error())
		}
		plan.set.ProductIDs = append(plan.set.ProductIDs, productIDs(products)...)
	}

	plan.set.CityIDs = cityIDs
	plan.set.CountryIDs = []string{countryID}
	plan.result.Products = len(plan.set.ProductIDs)
	plan.result.Cities = len(cityIDs)
	plan.result.Countries = 1

	return plan, nil
}

// commitCascade issues the plan's delete set as a single atomic batch. A set
// beyond the batcher's capacity is rejected up front; nothing is deleted on
// any failure.
func (s *catalogService) commitCascade(ctx context.Context, plan *cascadePlan) (*usecase.CascadeResult, error) {
	if size := plan.set.Size(); size > s.batcher.Capacity() {
		return nil, apperrors.ErrCascadeCapacityExceeded.WithDetails(
			"delete set holds " + strconv.Itoa(size) + " documents, capacity is " + strconv.Itoa(s.batcher.Capacity()))
	}

	if err := s.batcher.DeleteAll(ctx, plan.set); err != nil {
		if errors.Is(err, repository.ErrBatchCapacityExceeded) {
			return nil, apperrors.ErrCascadeCapacityExceeded.WithDetails(err.Error())
		}

		return nil, apperrors.ErrCascadeDeleteFailed.WithDetails(err.Error())
	}

	result := plan.result

	return &result, nil
}

func productIDs(products []*entity.Product) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}

	return ids
}

// chunkIDs splits ids into runs of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}

	return chunks
}
