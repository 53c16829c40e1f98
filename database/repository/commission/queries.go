package commissionRepo

import (
	"fmt"
	"time"

	"santai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// list runs a find with the given filter, optional sort and limit, and decodes
// all matching commission records.
func (r *MongoCommissionRepo) list(filter bson.M, sort bson.D, limit int64) ([]models.CommissionPayment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("commission record query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.CommissionPayment
	for cursor.Next(ctx) {
		var rec models.CommissionPayment
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode commission record: %w", err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}
