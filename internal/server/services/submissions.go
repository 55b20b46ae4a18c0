package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/repomanager"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionService struct {
	repomanager repomanager.RepositoryManager
}

func NewSubmissionService(m repomanager.RepositoryManager) *SubmissionService {
	return &SubmissionService{repomanager: m}
}

// Create stores sub. Status defaults to pending.
func (s *SubmissionService) Create(ctx context.Context, sub *models.Submission) (*models.InsertResult, error) {
	sub.ID = primitive.NilObjectID
	if sub.Status == "" {
		sub.Status = common.SubmissionStatusPending
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	return s.repomanager.Submissions().Insert(ctx, sub)
}

func (s *SubmissionService) ListPending(ctx context.Context) ([]*models.Submission, error) {
	return s.repomanager.Submissions().FindByStatus(ctx, common.SubmissionStatusPending)
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*models.Submission, error) {
	return s.repomanager.Submissions().FindByID(ctx, id)
}

func (s *SubmissionService) Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error) {
	return s.repomanager.Submissions().Grade(ctx, id, g)
}

// ListMine returns the submissions of identityEmail, which must match queryEmail.
func (s *SubmissionService) ListMine(ctx context.Context, identityEmail, queryEmail string) ([]*models.Submission, error) {
	if !ownsQuery(identityEmail, queryEmail) {
		return nil, common.ErrPermissionDenied
	}
	return s.repomanager.Submissions().FindByEmail(ctx, identityEmail)
}
