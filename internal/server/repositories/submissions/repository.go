package submissions

import (
	"context"

	"github.com/dmitrijs2005/assignhub/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, s *models.Submission) (*models.InsertResult, error)
	FindByID(ctx context.Context, id string) (*models.Submission, error)
	FindByStatus(ctx context.Context, status string) ([]*models.Submission, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Submission, error)
	Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error)
}
