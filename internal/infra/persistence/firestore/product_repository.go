package firestore

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/repository"
	"tourquote/internal/errors"
	"tourquote/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates the Firestore-backed product repository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	docRef := r.client.Collection(collProducts).NewDoc()
	if _, err := docRef.Create(ctx, model.ProductModelFromEntity(product)); err != nil {
		return errors.Wrap(err, "failed to create product document")
	}
	product.ID = docRef.ID

	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	docRef := r.client.Collection(collProducts).Doc(product.ID)
	if _, err := docRef.Set(ctx, model.ProductModelFromEntity(product)); err != nil {
		return errors.Wrap(err, "failed to update product document")
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collProducts).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product document")
	}

	return nil
}

func (r *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.client.Collection(collProducts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product document")
	}

	var m model.ProductModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(collProducts).OrderBy("name", firestore.Asc).Documents(ctx)

	return r.collect(iter)
}

func (r *productRepository) FindProductsByCity(ctx context.Context, cityID string) ([]*entity.Product, error) {
	iter := r.client.Collection(collProducts).Where("cityId", "==", cityID).Documents(ctx)

	return r.collect(iter)
}

func (r *productRepository) FindProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	iter := r.client.Collection(collProducts).Where("categoryId", "==", categoryID).Documents(ctx)

	return r.collect(iter)
}

// FindProductsByCityIDs resolves products for a set of cities in one query.
// Firestore caps "in" disjunctions, so callers must chunk their ID lists to
// repository.MaxCityRefsPerLookup.
func (r *productRepository) FindProductsByCityIDs(ctx context.Context, cityIDs []string) ([]*entity.Product, error) {
	if len(cityIDs) == 0 {
		return nil, nil
	}
	if len(cityIDs) > repository.MaxCityRefsPerLookup {
		return nil, repository.ErrTooManyCityRefs
	}

	iter := r.client.Collection(collProducts).Where("cityId", "in", cityIDs).Documents(ctx)

	return r.collect(iter)
}

func (r *productRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		var m model.ProductModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode product document")
		}
		products = append(products, m.ToEntity(snap.Ref.ID))
	}

	return products, nil
}
