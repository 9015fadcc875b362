// Package entity contains the core business objects of the project.
package entity

// Country is the root of the geography hierarchy.
type Country struct {
	ID   string `json:"id"`   // Firestore document ID.
	Name string `json:"name"` // Display name of the country.
}
