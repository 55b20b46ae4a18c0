package assignments

import (
	"context"

	"github.com/dmitrijs2005/assignhub/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, a *models.Assignment) (*models.InsertResult, error)
	FindByID(ctx context.Context, id string) (*models.Assignment, error)
	Find(ctx context.Context, filter models.AssignmentFilter, skip, limit int64) ([]*models.Assignment, error)
	Count(ctx context.Context, filter models.AssignmentFilter) (int64, error)
	Upsert(ctx context.Context, id string, fields models.AssignmentFields, uploadedThumb string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string, ownerEmail string) (*models.DeleteResult, error)
}
