package catalogRepo

import (
	"context"
	"errors"

	"websync/models"
)

// ErrNotFound is returned when a service with the requested ID does not exist.
var ErrNotFound = errors.New("service not found")

// CatalogRepository defines methods for service catalog data access.
type CatalogRepository interface {
	// Count returns the number of service documents in the catalog.
	Count(ctx context.Context) (int64, error)
	// Insert writes the given services as one batch. Used by seeding only.
	Insert(ctx context.Context, services []models.Service) error
	// GetByID retrieves a service by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ListAll returns every service in the store's natural order.
	ListAll(ctx context.Context) ([]models.Service, error)
}
