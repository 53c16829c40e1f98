package commissionRepo

import (
	"context"
	"fmt"
	"time"

	"santai/database"
	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCommissionRepo implements CommissionRepository using MongoDB.
type MongoCommissionRepo struct {
	coll *mongo.Collection
}

// NewMongoCommissionRepo creates a new CommissionRepository backed by the
// "commission_records" collection.
func NewMongoCommissionRepo() CommissionRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("commission_records")
	repo := &MongoCommissionRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("commission repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new commission record. The unique index on bookingId makes
// creation idempotent per booking: a concurrent or repeated insert surfaces as
// ErrDuplicateBooking instead of a second record.
func (r *MongoCommissionRepo) Create(record *models.CommissionPayment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create commission record: %w", err)
	}
	return nil
}

func (r *MongoCommissionRepo) GetByID(id string) (*models.CommissionPayment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.CommissionPayment
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch commission record with id %s: %w", id, err)
	}
	return &record, nil
}

func (r *MongoCommissionRepo) GetByBookingID(bookingID string) (*models.CommissionPayment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.CommissionPayment
	filter := bson.M{"bookingId": bookingID}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch commission record for booking %s: %w", bookingID, err)
	}
	return &record, nil
}

// UpdateWithDocument patches a commission record. When fromStatuses is non-empty
// the filter also requires the record to currently be in one of those statuses,
// which keeps every lifecycle transition idempotent under concurrent or
// redundant calls: a record that already left the source state simply no longer
// matches.
func (r *MongoCommissionRepo) UpdateWithDocument(id string, fromStatuses []string, updateDoc bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if len(fromStatuses) > 0 {
		filter["status"] = bson.M{"$in": fromStatuses}
	}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return 0, fmt.Errorf("failed to update commission record with id %s: %w", id, err)
	}
	return result.MatchedCount, nil
}

func (r *MongoCommissionRepo) ListByTherapistAndStatus(therapistID string, statuses []string) ([]models.CommissionPayment, error) {
	filter := bson.M{
		"therapistId": therapistID,
		"status":      bson.M{"$in": statuses},
	}
	return r.list(filter, nil, 0)
}

func (r *MongoCommissionRepo) ListByStatus(status string) ([]models.CommissionPayment, error) {
	return r.list(bson.M{"status": status}, nil, 0)
}

func (r *MongoCommissionRepo) ListPendingPastDeadline(now time.Time) ([]models.CommissionPayment, error) {
	filter := bson.M{
		"status":          models.CommissionStatusPending,
		"paymentDeadline": bson.M{"$lt": now},
	}
	return r.list(filter, nil, 0)
}

func (r *MongoCommissionRepo) ListHistory(therapistID string, limit int64) ([]models.CommissionPayment, error) {
	filter := bson.M{"therapistId": therapistID}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return r.list(filter, sort, limit)
}
