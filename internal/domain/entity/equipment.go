package entity

// Equipment is a piece of equipment owned by exactly one user.
type Equipment struct {
	ID     string // Document key within the owning user's equipment collection.
	UserID string // The owning user's document key.
	Name   string // Display name shown in reminder messages.
}
