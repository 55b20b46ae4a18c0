package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/mongox"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/repomanager"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, name, contentType string) (string, error)
}

type AssignmentService struct {
	repomanager repomanager.RepositoryManager
	uploader    Uploader
	pageSize    int64
}

func NewAssignmentService(m repomanager.RepositoryManager, u Uploader) *AssignmentService {
	return &AssignmentService{
		repomanager: m,
		uploader:    u,
		pageSize:    common.AssignmentsPageSize,
	}
}

// Create inserts a. When upload is not nil it is stored first and its URL is
// recorded as the uploaded thumbnail.
func (s *AssignmentService) Create(ctx context.Context, a *models.Assignment, upload *models.Upload) (*models.InsertResult, error) {
	a.ID = primitive.NilObjectID
	a.UploadedThumb = ""

	if upload != nil {
		url, err := s.upload(ctx, upload)
		if err != nil {
			return nil, err
		}
		a.UploadedThumb = url
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	return s.repomanager.Assignments().Insert(ctx, a)
}

// List returns one page of assignments, newest first.
func (s *AssignmentService) List(ctx context.Context, page, difficulty string) (*models.AssignmentPage, error) {
	p, err := ParsePage(page)
	if err != nil {
		return nil, err
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Assignments()
	filter := models.AssignmentFilter{Difficulty: d}

	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := repo.Find(ctx, filter, (p-1)*s.pageSize, s.pageSize)
	if err != nil {
		return nil, err
	}

	return &models.AssignmentPage{
		Total:      total,
		TotalPages: totalPages(total, s.pageSize),
		Page:       p,
		Data:       data,
	}, nil
}

// Get returns common.ErrorNotFound when the assignment does not exist.
func (s *AssignmentService) Get(ctx context.Context, id string) (*models.Assignment, error) {
	return s.repomanager.Assignments().FindByID(ctx, id)
}

// Update replaces the editable fields of assignment id, creating it when it
// does not exist.
func (s *AssignmentService) Update(ctx context.Context, id string, fields models.AssignmentFields, upload *models.Upload) (*models.UpdateResult, error) {
	if _, err := mongox.ParseID(id); err != nil {
		return nil, err
	}

	var thumb string
	if upload != nil {
		url, err := s.upload(ctx, upload)
		if err != nil {
			return nil, err
		}
		thumb = url
	}

	return s.repomanager.Assignments().Upsert(ctx, id, fields, thumb)
}

// Delete removes assignment id on behalf of identityEmail. The caller must
// name itself in queryEmail.
func (s *AssignmentService) Delete(ctx context.Context, id, identityEmail, queryEmail string) (*models.DeleteResult, error) {
	if !ownsQuery(identityEmail, queryEmail) {
		return nil, common.ErrPermissionDenied
	}
	return s.repomanager.Assignments().Delete(ctx, id, identityEmail)
}

func (s *AssignmentService) upload(ctx context.Context, u *models.Upload) (string, error) {
	url, err := s.uploader.Upload(ctx, u.Data, u.Name, u.ContentType)
	if err != nil {
		return "", fmt.Errorf("thumbnail upload: %w", err)
	}
	return url, nil
}
