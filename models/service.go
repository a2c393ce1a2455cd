package models

// Service represents a bookable catalog entry (e.g. "AC Maintenance").
// Catalog rows are written once by the startup seed and never updated
// or deleted by any exposed operation.
type Service struct {
	ID       string  `bson:"id" json:"id"`             // Unique service identifier (UUID)
	Name     string  `bson:"name" json:"name"`         // Display name
	Image    string  `bson:"image" json:"image"`       // Illustration URI
	Price    float64 `bson:"price" json:"price"`       // Price in the smallest currency unit
	Category string  `bson:"category" json:"category"` // e.g. "AC", "Plumbing", "Electrical", "Cleaning"
}
