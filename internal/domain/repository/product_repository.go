package repository

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product document does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrTooManyCityRefs is returned when a city-reference lookup exceeds the
	// store's disjunction limit; callers must chunk.
	ErrTooManyCityRefs = errors.New("too many city references in one lookup")
)

// MaxCityRefsPerLookup is the largest number of city IDs a single
// FindProductsByCityIDs call may carry (Firestore's `in` disjunction limit).
const MaxCityRefsPerLookup = 30

// ProductRepository defines the interface for product catalog operations.
type ProductRepository interface {
	// CreateProduct persists a new product and fills in its document ID.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct overwrites an existing product document.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a single product. Products have no dependents, so
	// this is the only non-batched delete in the catalog.
	DeleteProduct(ctx context.Context, id string) error

	// FindProductByID retrieves a product by its document ID.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts retrieves all products ordered by name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductsByCity retrieves all products referencing the given city.
	FindProductsByCity(ctx context.Context, cityID string) ([]*entity.Product, error)

	// FindProductsByCategory retrieves all products referencing the given category.
	FindProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// FindProductsByCityIDs retrieves all products referencing any of the given
	// cities in one query. At most MaxCityRefsPerLookup IDs may be passed;
	// larger inputs return ErrTooManyCityRefs.
	FindProductsByCityIDs(ctx context.Context, cityIDs []string) ([]*entity.Product, error)
}
