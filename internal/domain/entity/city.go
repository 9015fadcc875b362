package entity

// City belongs to exactly one Country. Deleting a Country removes all of its
// Cities together with their Products.
type City struct {
	ID        string `json:"id"`         // Firestore document ID.
	Name      string `json:"name"`       // Display name of the city.
	CountryID string `json:"country_id"` // ID of the owning Country.
}
