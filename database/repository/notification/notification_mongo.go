package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"santai/database"
	"santai/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new NotificationRepository backed by the
// "notifications" collection.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("notifications")
	return &MongoNotificationRepo{coll: coll}
}

func (r *MongoNotificationRepo) Create(notification *models.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
