package requests

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the persistence contract shared by all request types. D is
// the stored document type.
type Repository[D any] interface {
	Insert(ctx context.Context, doc D) error
	Find(ctx context.Context, filter bson.M, sort bson.D, limit, skip int64) ([]D, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id string) (D, error)
	UpdateStatus(ctx context.Context, id, status string, now time.Time) (StatusUpdate, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type MongoRepository[D any] struct {
	col *mongo.Collection
}

func NewRepository[D any](col *mongo.Collection) *MongoRepository[D] {
	return &MongoRepository[D]{col: col}
}

func (r *MongoRepository[D]) Insert(ctx context.Context, doc D) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *MongoRepository[D]) Find(ctx context.Context, filter bson.M, sort bson.D, limit, skip int64) ([]D, error) {
	opts := options.Find().
		SetSort(sort).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]D, 0)
	for cursor.Next(ctx) {
		var doc D
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository[D]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}

func (r *MongoRepository[D]) FindByID(ctx context.Context, id string) (D, error) {
	var doc D
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// UpdateStatus sets status and refreshes updatedAt in one atomic write.
func (r *MongoRepository[D]) UpdateStatus(ctx context.Context, id, status string, now time.Time) (StatusUpdate, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"status": 1, "updatedAt": 1})
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": now,
		},
	}

	var updated struct {
		ID        string    `bson:"_id"`
		Status    string    `bson:"status"`
		UpdatedAt time.Time `bson:"updatedAt"`
	}
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return StatusUpdate{}, err
	}
	return StatusUpdate{ID: updated.ID, Status: updated.Status, UpdatedAt: updated.UpdatedAt}, nil
}

func (r *MongoRepository[D]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository[D]) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var group struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&group); err != nil {
			return nil, err
		}
		counts[group.Status] = group.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
