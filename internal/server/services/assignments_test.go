package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedAssignments(n int, d models.Difficulty) []*models.Assignment {
	out := make([]*models.Assignment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Assignment{
			ID:         primitive.NewObjectID(),
			Title:      fmt.Sprintf("%s-%d", d, i),
			Difficulty: d,
		})
	}
	return out
}

func TestAssignmentService_CreateWithoutUpload(t *testing.T) {
	rm := newFakeRepoMgr()
	up := &fakeUploader{}
	svc := NewAssignmentService(rm, up)

	a := &models.Assignment{ID: primitive.NewObjectID(), Title: "Essay", UploadedThumb: "forged"}
	res, err := svc.Create(context.Background(), a, nil)
	require.NoError(t, err)

	assert.True(t, res.Acknowledged)
	assert.Equal(t, 0, up.calls)
	require.NotNil(t, rm.assignments.inserted)
	assert.Empty(t, rm.assignments.inserted.UploadedThumb)
	assert.True(t, rm.assignments.inserted.ID.IsZero())
	assert.False(t, rm.assignments.inserted.CreatedAt.IsZero())
}

func TestAssignmentService_CreateWithUpload(t *testing.T) {
	rm := newFakeRepoMgr()
	up := &fakeUploader{url: "http://127.0.0.1:9000/thumbnails/cat.png?alt=media&token=abc"}
	svc := NewAssignmentService(rm, up)

	upload := &models.Upload{Name: "cat.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	_, err := svc.Create(context.Background(), &models.Assignment{Title: "Essay"}, upload)
	require.NoError(t, err)

	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "cat.png", up.name)
	assert.Equal(t, "image/png", up.ctype)
	assert.Equal(t, []byte{1, 2, 3}, up.data)
	assert.Equal(t, up.url, rm.assignments.inserted.UploadedThumb)
	assert.Contains(t, rm.assignments.inserted.UploadedThumb, "thumbnails")
	assert.Contains(t, rm.assignments.inserted.UploadedThumb, "token=")
}

func TestAssignmentService_CreateUploadFails(t *testing.T) {
	rm := newFakeRepoMgr()
	up := &fakeUploader{err: fmt.Errorf("%w: bucket missing", common.ErrUpload)}
	svc := NewAssignmentService(rm, up)

	_, err := svc.Create(context.Background(), &models.Assignment{}, &models.Upload{Name: "x.png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpload))
	assert.Nil(t, rm.assignments.inserted)
}

func TestAssignmentService_CreateKeepsCreatedAt(t *testing.T) {
	rm := newFakeRepoMgr()
	svc := NewAssignmentService(rm, &fakeUploader{})
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := svc.Create(context.Background(), &models.Assignment{CreatedAt: ts}, nil)
	require.NoError(t, err)
	assert.Equal(t, ts, rm.assignments.inserted.CreatedAt)
}

func TestAssignmentService_ListPaging(t *testing.T) {
	rm := newFakeRepoMgr()
	rm.assignments.all = seedAssignments(20, models.DifficultyEasy)
	svc := NewAssignmentService(rm, &fakeUploader{})

	p1, err := svc.List(context.Background(), "1", "")
	require.NoError(t, err)
	p2, err := svc.List(context.Background(), "2", "")
	require.NoError(t, err)
	p3, err := svc.List(context.Background(), "3", "all")
	require.NoError(t, err)

	assert.Equal(t, int64(20), p1.Total)
	assert.Equal(t, int64(3), p1.TotalPages)
	assert.Equal(t, int64(1), p1.Page)
	assert.Len(t, p1.Data, 9)
	assert.Len(t, p2.Data, 9)
	assert.Len(t, p3.Data, 2)

	seen := map[primitive.ObjectID]bool{}
	for _, a := range p1.Data {
		seen[a.ID] = true
	}
	for _, a := range p2.Data {
		assert.False(t, seen[a.ID], "page 2 overlaps page 1")
	}

	require.Len(t, rm.assignments.findCalls, 3)
	assert.Equal(t, findCall{skip: 0, limit: 9}, rm.assignments.findCalls[0])
	assert.Equal(t, findCall{skip: 9, limit: 9}, rm.assignments.findCalls[1])
	assert.Equal(t, findCall{skip: 18, limit: 9}, rm.assignments.findCalls[2])
}

func TestAssignmentService_ListDifficultyFilter(t *testing.T) {
	rm := newFakeRepoMgr()
	rm.assignments.all = append(seedAssignments(4, models.DifficultyEasy), seedAssignments(3, models.DifficultyHard)...)
	svc := NewAssignmentService(rm, &fakeUploader{})

	page, err := svc.List(context.Background(), "", "Hard")
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(1), page.TotalPages)
	assert.Len(t, page.Data, 3)
	for _, a := range page.Data {
		assert.Equal(t, models.DifficultyHard, a.Difficulty)
	}
	assert.Equal(t, models.DifficultyHard, rm.assignments.findCalls[0].filter.Difficulty)
}

func TestAssignmentService_ListErrors(t *testing.T) {
	rm := newFakeRepoMgr()
	svc := NewAssignmentService(rm, &fakeUploader{})

	_, err := svc.List(context.Background(), "0", "")
	assert.True(t, errors.Is(err, common.ErrInvalidPage))

	_, err = svc.List(context.Background(), "1", "Trivial")
	assert.True(t, errors.Is(err, common.ErrInvalidDifficulty))
	assert.Empty(t, rm.assignments.findCalls)

	rm.assignments.countErr = errors.New("count failed")
	_, err = svc.List(context.Background(), "1", "")
	assert.EqualError(t, err, "count failed")

	rm.assignments.countErr = nil
	rm.assignments.findErr = errors.New("find failed")
	_, err = svc.List(context.Background(), "1", "")
	assert.EqualError(t, err, "find failed")
}

func TestAssignmentService_Get(t *testing.T) {
	rm := newFakeRepoMgr()
	svc := NewAssignmentService(rm, &fakeUploader{})

	rm.assignments.byID = &models.Assignment{Title: "Essay"}
	a, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, "Essay", a.Title)

	rm.assignments.byID, rm.assignments.byIDErr = nil, common.ErrorNotFound
	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestAssignmentService_Update(t *testing.T) {
	rm := newFakeRepoMgr()
	up := &fakeUploader{url: "http://files/thumbnails/new.png?alt=media&token=t"}
	svc := NewAssignmentService(rm, up)
	id := primitive.NewObjectID().Hex()
	fields := models.AssignmentFields{Title: "Updated", Difficulty: models.DifficultyMedium, Marks: 20}

	res, err := svc.Update(context.Background(), id, fields, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Equal(t, id, rm.assignments.upsertID)
	assert.Equal(t, fields, rm.assignments.upsertF)
	assert.Empty(t, rm.assignments.upsertURL)

	_, err = svc.Update(context.Background(), id, fields, &models.Upload{Name: "new.png"})
	require.NoError(t, err)
	assert.Equal(t, up.url, rm.assignments.upsertURL)
}

func TestAssignmentService_UpdateInvalidIDSkipsUpload(t *testing.T) {
	rm := newFakeRepoMgr()
	up := &fakeUploader{}
	svc := NewAssignmentService(rm, up)

	_, err := svc.Update(context.Background(), "nope", models.AssignmentFields{}, &models.Upload{Name: "a.png"})
	assert.True(t, errors.Is(err, common.ErrInvalidID))
	assert.Equal(t, 0, up.calls)
	assert.Empty(t, rm.assignments.upsertID)
}

func TestAssignmentService_Delete(t *testing.T) {
	rm := newFakeRepoMgr()
	svc := NewAssignmentService(rm, &fakeUploader{})
	id := primitive.NewObjectID().Hex()

	res, err := svc.Delete(context.Background(), id, "a@x.io", "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
	assert.Equal(t, id, rm.assignments.deleteID)
	assert.Equal(t, "a@x.io", rm.assignments.deleteBy)
}

func TestAssignmentService_DeleteMismatchedEmail(t *testing.T) {
	rm := newFakeRepoMgr()
	svc := NewAssignmentService(rm, &fakeUploader{})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), "a@x.io", "b@x.io")
	assert.True(t, errors.Is(err, common.ErrPermissionDenied))

	_, err = svc.Delete(context.Background(), primitive.NewObjectID().Hex(), "", "")
	assert.True(t, errors.Is(err, common.ErrPermissionDenied))

	assert.Equal(t, 0, rm.assignments.deleteCall)
}
