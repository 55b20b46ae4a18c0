package repomanager

import (
	"context"

	"github.com/dmitrijs2005/assignhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/submissions"
)

type RepositoryManager interface {
	EnsureIndexes(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Assignments() assignments.Repository
	Submissions() submissions.Repository
}
