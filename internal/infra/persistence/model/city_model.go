package model

import "tourquote/internal/domain/entity"

// CityModel is the document shape of the cities collection. CountryID is the
// foreign key the country cascade queries on.
type CityModel struct {
	Name      string `firestore:"name"`
	CountryID string `firestore:"countryId"`
}

// ToEntity converts the document to a domain entity.
func (m *CityModel) ToEntity(id string) *entity.City {
	return &entity.City{
		ID:        id,
		Name:      m.Name,
		CountryID: m.CountryID,
	}
}

// CityModelFromEntity converts a domain entity to its document shape.
func CityModelFromEntity(city *entity.City) *CityModel {
	return &CityModel{
		Name:      city.Name,
		CountryID: city.CountryID,
	}
}
