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

type categoryRepository struct {
	client *firestore.Client
}

// NewCategoryRepository creates the Firestore-backed category repository.
func NewCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	docRef := r.client.Collection(collCategories).NewDoc()
	if _, err := docRef.Create(ctx, model.CategoryModelFromEntity(category)); err != nil {
		return errors.Wrap(err, "failed to create category document")
	}
	category.ID = docRef.ID

	return nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	docRef := r.client.Collection(collCategories).Doc(category.ID)
	if _, err := docRef.Set(ctx, model.CategoryModelFromEntity(category)); err != nil {
		return errors.Wrap(err, "failed to update category document")
	}

	return nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	snap, err := r.client.Collection(collCategories).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category document")
	}

	var m model.CategoryModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode category document")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection(collCategories).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var categories []*entity.Category
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate categories")
		}

		var m model.CategoryModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode category document")
		}
		categories = append(categories, m.ToEntity(snap.Ref.ID))
	}

	return categories, nil
}
