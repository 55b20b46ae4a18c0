// Package submissions provides the MongoDB-backed repository for the
// "submissions" collection.
package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/mongox"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "submissions"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Insert(ctx context.Context, s *models.Submission) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return mongox.InsertResult(res), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	oid, err := mongox.ParseID(id)
	if err != nil {
		return nil, err
	}

	var s models.Submission
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}

// FindByStatus returns every submission with the given status in natural order.
func (r *MongoRepository) FindByStatus(ctx context.Context, status string) ([]*models.Submission, error) {
	return r.find(ctx, bson.M{"status": status})
}

// FindByEmail returns every submission made by email in natural order.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) ([]*models.Submission, error) {
	return r.find(ctx, bson.M{"email": email})
}

// Grade sets status, feedback and result_marks. A missing submission is
// reported through a zero MatchedCount, not an error.
func (r *MongoRepository) Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error) {
	oid, err := mongox.ParseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"status":       g.Status,
		"feedback":     g.Feedback,
		"result_marks": g.ResultMarks,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mongox.UpdateResult(res), nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]*models.Submission, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.Submission, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	return result, nil
}
