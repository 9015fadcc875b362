package model

import "tourquote/internal/domain/entity"

// CategoryModel is the document shape of the categories collection.
type CategoryModel struct {
	Name string `firestore:"name"`
}

// ToEntity converts the document to a domain entity.
func (m *CategoryModel) ToEntity(id string) *entity.Category {
	return &entity.Category{
		ID:   id,
		Name: m.Name,
	}
}

// CategoryModelFromEntity converts a domain entity to its document shape.
func CategoryModelFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Name: category.Name,
	}
}
