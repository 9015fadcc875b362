package model

import "tourquote/internal/domain/entity"

// ProductModel is the document shape of the products collection. CityID and
// CategoryID are the foreign keys the cascades query on; price fields are
// stored even when zero so admin edits round-trip losslessly.
type ProductModel struct {
	Name        string  `firestore:"name"`
	Description string  `firestore:"description,omitempty"`
	URL         string  `firestore:"url,omitempty"`
	CityID      string  `firestore:"cityId"`
	CategoryID  string  `firestore:"categoryId"`
	PricingMode string  `firestore:"pricingMode"`
	PriceAdult  float64 `firestore:"priceAdult"`
	PriceChild  float64 `firestore:"priceChild"`
	PriceInfant float64 `firestore:"priceInfant"`
	PriceUnit   float64 `firestore:"priceUnit"`
}

// ToEntity converts the document to a domain entity.
func (m *ProductModel) ToEntity(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		URL:         m.URL,
		CityID:      m.CityID,
		CategoryID:  m.CategoryID,
		PricingMode: entity.PricingMode(m.PricingMode),
		PriceAdult:  m.PriceAdult,
		PriceChild:  m.PriceChild,
		PriceInfant: m.PriceInfant,
		PriceUnit:   m.PriceUnit,
	}
}

// ProductModelFromEntity converts a domain entity to its document shape.
func ProductModelFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		Name:        product.Name,
		Description: product.Description,
		URL:         product.URL,
		CityID:      product.CityID,
		CategoryID:  product.CategoryID,
		PricingMode: product.PricingMode.String(),
		PriceAdult:  product.PriceAdult,
		PriceChild:  product.PriceChild,
		PriceInfant: product.PriceInfant,
		PriceUnit:   product.PriceUnit,
	}
}
