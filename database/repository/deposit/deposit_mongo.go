package depositRepo

import (
	"context"
	"fmt"
	"time"

	"santai/database"
	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDepositRepo implements DepositRepository using MongoDB.
type MongoDepositRepo struct {
	coll *mongo.Collection
}

// NewMongoDepositRepo creates a new DepositRepository backed by the
// "scheduled_booking_deposits" collection.
func NewMongoDepositRepo() DepositRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("scheduled_booking_deposits")
	repo := &MongoDepositRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("deposit repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDepositRepo) Create(record *models.DepositRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create deposit record: %w", err)
	}
	return nil
}

func (r *MongoDepositRepo) GetByID(id string) (*models.DepositRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.DepositRecord
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch deposit record with id %s: %w", id, err)
	}
	return &record, nil
}

func (r *MongoDepositRepo) GetByBookingID(bookingID string) (*models.DepositRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.DepositRecord
	filter := bson.M{"bookingId": bookingID}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch deposit record for booking %s: %w", bookingID, err)
	}
	return &record, nil
}

func (r *MongoDepositRepo) UpdateWithDocument(id string, fromStatuses []string, updateDoc bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if len(fromStatuses) > 0 {
		filter["status"] = bson.M{"$in": fromStatuses}
	}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return 0, fmt.Errorf("failed to update deposit record with id %s: %w", id, err)
	}
	return result.MatchedCount, nil
}

func (r *MongoDepositRepo) ListByStatus(status string) ([]models.DepositRecord, error) {
	return r.list(bson.M{"status": status})
}

func (r *MongoDepositRepo) ListPendingPastExpiry(now time.Time) ([]models.DepositRecord, error) {
	filter := bson.M{
		"status":    models.DepositStatusPending,
		"expiresAt": bson.M{"$lt": now},
	}
	return r.list(filter)
}

func (r *MongoDepositRepo) list(filter bson.M) ([]models.DepositRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("deposit record query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.DepositRecord
	for cursor.Next(ctx) {
		var rec models.DepositRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode deposit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}

func (r *MongoDepositRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "expiresAt", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
