// Package model defines the Firestore document shapes for the catalog
// collections and their mapping to domain entities. Document IDs live on the
// reference, not in the document body.
package model

import "tourquote/internal/domain/entity"

// CountryModel is the document shape of the countries collection.
type CountryModel struct {
	Name string `firestore:"name"`
}

// ToEntity converts the document to a domain entity.
func (m *CountryModel) ToEntity(id string) *entity.Country {
	return &entity.Country{
		ID:   id,
		Name: m.Name,
	}
}

// CountryModelFromEntity converts a domain entity to its document shape.
func CountryModelFromEntity(country *entity.Country) *CountryModel {
	return &CountryModel{
		Name: country.Name,
	}
}
