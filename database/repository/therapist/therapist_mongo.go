package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new TherapistRepository backed by the
// "therapists" collection.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("therapists")
	repo := &MongoTherapistRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("therapist repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&therapist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch therapist with id %s: %w", id, err)
	}
	return &therapist, nil
}

func (r *MongoTherapistRepo) GetByEmail(email string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	filter := bson.M{"email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&therapist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch therapist with email %s: %w", email, err)
	}
	return &therapist, nil
}

func (r *MongoTherapistRepo) GetAll() ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var therapists []models.Therapist
	for cursor.Next(ctx) {
		var t models.Therapist
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode therapist: %w", err)
		}
		therapists = append(therapists, t)
	}
	return therapists, nil
}

func (r *MongoTherapistRepo) Create(therapist *models.Therapist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, therapist)
	if err != nil {
		return fmt.Errorf("failed to create therapist: %w", err)
	}
	return nil
}

// UpdateWithDocument updates a therapist using a custom update document.
func (r *MongoTherapistRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update therapist with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", id)
	}
	return nil
}

func (r *MongoTherapistRepo) GetByTokenHash(tokenHash string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	filter := bson.M{"tokenHash": tokenHash}
	if err := r.coll.FindOne(ctx, filter).Decode(&therapist); err != nil {
		return nil, fmt.Errorf("failed to fetch therapist by token hash: %w", err)
	}
	return &therapist, nil
}

// ensureIndexes creates indexes for frequently used fields in queries.
func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tokenHash", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "bookingEnabled", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
