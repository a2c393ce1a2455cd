package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository over the given database handle.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// opCtx derives a per-call timeout context from the caller's context.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document, assigning its ID and timestamps.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListAll returns every booking in the store's natural order.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus persists a new lifecycle status for the given booking.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
