// Package mongox holds small helpers shared by the MongoDB repositories:
// identifier parsing and conversion of driver results into model outcomes.
package mongox

import (
	"fmt"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ParseID converts a 24-character hex string into an ObjectID.
// Malformed input yields common.ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", common.ErrInvalidID, id)
	}
	return oid, nil
}

func InsertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func DeleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
