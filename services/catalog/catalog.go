package catalog

import (
	"context"
	"encoding/json"
	"time"

	catalogRepo "websync/database/repository/catalog"
	"websync/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cacheKey holds the serialized service list. The catalog is immutable
// after seeding, so a long TTL is safe.
const (
	cacheKey = "catalog:services"
	cacheTTL = time.Hour
)

// CatalogService exposes read access to the set of offerable services.
type CatalogService interface {
	// ListServices returns all services in the catalog.
	ListServices(ctx context.Context) ([]models.Service, error)
	// GetService retrieves a single service; catalogRepo.ErrNotFound when absent.
	GetService(ctx context.Context, id string) (*models.Service, error)
	// Seed populates an empty catalog with the default services. It is a
	// no-op when the catalog already has rows; returns the number inserted.
	Seed(ctx context.Context) (int, error)
}

// DefaultCatalogService implements CatalogService over the catalog
// repository with an optional Redis read-through cache.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

// ListServices returns all services, preferring the cached copy. Cache
// failures fall through to the store.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(data), &services); err == nil {
				return services, nil
			}
		}
	}

	services, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				zap.L().Debug("failed to cache catalog", zap.Error(err))
			}
		}
	}
	return services, nil
}

// GetService retrieves a single service by ID.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

// Seed inserts the default services when the catalog is empty. The check
// is count-based, not transactional: two simultaneous cold starts could
// race, which the unique id index turns into a duplicate-key error for
// the loser.
func (s *DefaultCatalogService) Seed(ctx context.Context) (int, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	services := DefaultServices()
	if err := s.Repo.Insert(ctx, services); err != nil {
		return 0, err
	}
	return len(services), nil
}
