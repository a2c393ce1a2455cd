package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"websync/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a CatalogRepository over the given database handle.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	repo := &MongoCatalogRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// opCtx derives a per-call timeout context from the caller's context.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Count returns the number of service documents in the catalog.
func (r *MongoCatalogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

// Insert writes the given services as one batch, assigning IDs where missing.
func (r *MongoCatalogRepo) Insert(ctx context.Context, services []models.Service) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(services))
	for i := range services {
		if services[i].ID == "" {
			services[i].ID = uuid.New().String()
		}
		docs = append(docs, services[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert services: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// ListAll returns every service in the store's natural order.
func (r *MongoCatalogRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
