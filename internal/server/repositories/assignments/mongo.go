// Package assignments provides the MongoDB-backed repository for the
// "assignments" collection.
package assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/mongox"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the collection holding assignment documents.
const CollectionName = "assignments"

// MongoRepository implements Repository over a single collection handle.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository constructs a repository bound to the given collection.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// Insert stores a and sets a.ID to the generated identifier.
func (r *MongoRepository) Insert(ctx context.Context, a *models.Assignment) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return mongox.InsertResult(res), nil
}

// FindByID returns common.ErrorNotFound when no document has the given id.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	oid, err := mongox.ParseID(id)
	if err != nil {
		return nil, err
	}

	var a models.Assignment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &a, nil
}

// Find returns matching assignments, newest first.
func (r *MongoRepository) Find(ctx context.Context, filter models.AssignmentFilter, skip, limit int64) ([]*models.Assignment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, filterDoc(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to select assignments: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.Assignment, 0, limit)
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return result, nil
}

// Count returns the number of assignments matching filter, ignoring paging.
func (r *MongoRepository) Count(ctx context.Context, filter models.AssignmentFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filterDoc(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return n, nil
}

// Upsert replaces the editable fields of assignment id, creating it if it
// does not exist. uploadedThumb is written only when non-empty.
func (r *MongoRepository) Upsert(ctx context.Context, id string, fields models.AssignmentFields, uploadedThumb string) (*models.UpdateResult, error) {
	oid, err := mongox.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{
		{Key: "title", Value: fields.Title},
		{Key: "description", Value: fields.Description},
		{Key: "date", Value: fields.Date},
		{Key: "difficulty", Value: fields.Difficulty},
		{Key: "marks", Value: fields.Marks},
		{Key: "thumbnailUrl", Value: fields.ThumbnailURL},
	}
	if uploadedThumb != "" {
		set = append(set, bson.E{Key: "uploadedThumb", Value: uploadedThumb})
	}

	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: time.Now().UTC()}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mongox.UpdateResult(res), nil
}

// Delete removes assignment id. A non-empty ownerEmail additionally requires
// the stored creator email, if the document has one, to match.
func (r *MongoRepository) Delete(ctx context.Context, id string, ownerEmail string) (*models.DeleteResult, error) {
	oid, err := mongox.ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.DeleteOne(ctx, deleteFilter(oid, ownerEmail))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mongox.DeleteResult(res), nil
}

func filterDoc(f models.AssignmentFilter) bson.M {
	if f.Difficulty == "" {
		return bson.M{}
	}
	return bson.M{"difficulty": f.Difficulty}
}

func deleteFilter(oid primitive.ObjectID, ownerEmail string) bson.M {
	filter := bson.M{"_id": oid}
	if ownerEmail != "" {
		filter["$or"] = bson.A{
			bson.M{"email": bson.M{"$exists": false}},
			bson.M{"email": ownerEmail},
		}
	}
	return filter
}
