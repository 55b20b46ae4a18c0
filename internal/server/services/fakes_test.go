package services

import (
	"context"

	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/submissions"
)

type fakeRepoMgr struct {
	repomanager.RepositoryManager
	assignments *fakeAssignmentsRepo
	submissions *fakeSubmissionsRepo
}

func (m *fakeRepoMgr) Assignments() assignments.Repository { return m.assignments }
func (m *fakeRepoMgr) Submissions() submissions.Repository { return m.submissions }

func newFakeRepoMgr() *fakeRepoMgr {
	return &fakeRepoMgr{
		assignments: &fakeAssignmentsRepo{},
		submissions: &fakeSubmissionsRepo{},
	}
}

type findCall struct {
	filter      models.AssignmentFilter
	skip, limit int64
}

type fakeAssignmentsRepo struct {
	all []*models.Assignment

	inserted   *models.Assignment
	insertErr  error
	findCalls  []findCall
	findErr    error
	countErr   error
	byID       *models.Assignment
	byIDErr    error
	upsertID   string
	upsertF    models.AssignmentFields
	upsertURL  string
	upsertErr  error
	deleteID   string
	deleteBy   string
	deleteErr  error
	deleteCall int
}

func (f *fakeAssignmentsRepo) matching(filter models.AssignmentFilter) []*models.Assignment {
	var out []*models.Assignment
	for _, a := range f.all {
		if filter.Difficulty == "" || a.Difficulty == filter.Difficulty {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeAssignmentsRepo) Insert(ctx context.Context, a *models.Assignment) (*models.InsertResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = a
	return &models.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (f *fakeAssignmentsRepo) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	return f.byID, f.byIDErr
}

func (f *fakeAssignmentsRepo) Find(ctx context.Context, filter models.AssignmentFilter, skip, limit int64) ([]*models.Assignment, error) {
	f.findCalls = append(f.findCalls, findCall{filter: filter, skip: skip, limit: limit})
	if f.findErr != nil {
		return nil, f.findErr
	}
	m := f.matching(filter)
	if skip >= int64(len(m)) {
		return []*models.Assignment{}, nil
	}
	end := skip + limit
	if end > int64(len(m)) {
		end = int64(len(m))
	}
	return m[skip:end], nil
}

func (f *fakeAssignmentsRepo) Count(ctx context.Context, filter models.AssignmentFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeAssignmentsRepo) Upsert(ctx context.Context, id string, fields models.AssignmentFields, uploadedThumb string) (*models.UpdateResult, error) {
	f.upsertID, f.upsertF, f.upsertURL = id, fields, uploadedThumb
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAssignmentsRepo) Delete(ctx context.Context, id, ownerEmail string) (*models.DeleteResult, error) {
	f.deleteCall++
	f.deleteID, f.deleteBy = id, ownerEmail
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeSubmissionsRepo struct {
	inserted    *models.Submission
	insertErr   error
	byID        *models.Submission
	byIDErr     error
	status      string
	email       string
	list        []*models.Submission
	listErr     error
	gradeID     string
	grade       models.Grade
	gradeErr    error
	byEmailCall int
}

func (f *fakeSubmissionsRepo) Insert(ctx context.Context, s *models.Submission) (*models.InsertResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = s
	return &models.InsertResult{Acknowledged: true, InsertedID: "sub-id"}, nil
}

func (f *fakeSubmissionsRepo) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	return f.byID, f.byIDErr
}

func (f *fakeSubmissionsRepo) FindByStatus(ctx context.Context, status string) ([]*models.Submission, error) {
	f.status = status
	return f.list, f.listErr
}

func (f *fakeSubmissionsRepo) FindByEmail(ctx context.Context, email string) ([]*models.Submission, error) {
	f.byEmailCall++
	f.email = email
	return f.list, f.listErr
}

func (f *fakeSubmissionsRepo) Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error) {
	f.gradeID, f.grade = id, g
	if f.gradeErr != nil {
		return nil, f.gradeErr
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeUploader struct {
	calls int
	name  string
	ctype string
	data  []byte
	url   string
	err   error
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, name, contentType string) (string, error) {
	u.calls++
	u.data, u.name, u.ctype = data, name, contentType
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}
