package httpserver

import (
	"context"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
)

type fakeAssignments struct {
	created    *models.Assignment
	upload     *models.Upload
	createErr  error
	page       string
	difficulty string
	listOut    *models.AssignmentPage
	listErr    error
	getOut     *models.Assignment
	getErr     error
	updateID   string
	fields     models.AssignmentFields
	updateErr  error
	deleteID   string
	identity   string
	query      string
	deleteErr  error
	panicOnGet bool
}

func (f *fakeAssignments) Create(ctx context.Context, a *models.Assignment, upload *models.Upload) (*models.InsertResult, error) {
	f.created, f.upload = a, upload
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: "664f1c2ab1e4a1d2c3b4a5f6"}, nil
}

func (f *fakeAssignments) List(ctx context.Context, page, difficulty string) (*models.AssignmentPage, error) {
	f.page, f.difficulty = page, difficulty
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeAssignments) Get(ctx context.Context, id string) (*models.Assignment, error) {
	if f.panicOnGet {
		panic("boom")
	}
	return f.getOut, f.getErr
}

func (f *fakeAssignments) Update(ctx context.Context, id string, fields models.AssignmentFields, upload *models.Upload) (*models.UpdateResult, error) {
	f.updateID, f.fields, f.upload = id, fields, upload
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAssignments) Delete(ctx context.Context, id, identityEmail, queryEmail string) (*models.DeleteResult, error) {
	f.deleteID, f.identity, f.query = id, identityEmail, queryEmail
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if identityEmail == "" || identityEmail != queryEmail {
		return nil, common.ErrPermissionDenied
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeSubmissions struct {
	created  *models.Submission
	pending  []*models.Submission
	getOut   *models.Submission
	getErr   error
	gradeID  string
	grade    models.Grade
	mine     []*models.Submission
	identity string
}

func (f *fakeSubmissions) Create(ctx context.Context, s *models.Submission) (*models.InsertResult, error) {
	f.created = s
	return &models.InsertResult{Acknowledged: true, InsertedID: "664f1c2ab1e4a1d2c3b4a5f7"}, nil
}

func (f *fakeSubmissions) ListPending(ctx context.Context) ([]*models.Submission, error) {
	return f.pending, nil
}

func (f *fakeSubmissions) Get(ctx context.Context, id string) (*models.Submission, error) {
	return f.getOut, f.getErr
}

func (f *fakeSubmissions) Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error) {
	f.gradeID, f.grade = id, g
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeSubmissions) ListMine(ctx context.Context, identityEmail, queryEmail string) ([]*models.Submission, error) {
	f.identity = identityEmail
	if identityEmail == "" || identityEmail != queryEmail {
		return nil, common.ErrPermissionDenied
	}
	return f.mine, nil
}
