package entity

// Category is an independent classification axis for Products (tour, transfer,
// ticket and so on). Deleting a Category removes all Products referencing it.
type Category struct {
	ID   string `json:"id"`   // Firestore document ID.
	Name string `json:"name"` // Display name of the category.
}
