// Package httpserver exposes the assignment and submission services over
// HTTP: routing, cookie based authentication, CORS and request logging.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/logging"
	"github.com/dmitrijs2005/assignhub/internal/server/auth"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type AssignmentService interface {
	Create(ctx context.Context, a *models.Assignment, upload *models.Upload) (*models.InsertResult, error)
	List(ctx context.Context, page, difficulty string) (*models.AssignmentPage, error)
	Get(ctx context.Context, id string) (*models.Assignment, error)
	Update(ctx context.Context, id string, fields models.AssignmentFields, upload *models.Upload) (*models.UpdateResult, error)
	Delete(ctx context.Context, id, identityEmail, queryEmail string) (*models.DeleteResult, error)
}

type SubmissionService interface {
	Create(ctx context.Context, s *models.Submission) (*models.InsertResult, error)
	ListPending(ctx context.Context) ([]*models.Submission, error)
	Get(ctx context.Context, id string) (*models.Submission, error)
	Grade(ctx context.Context, id string, g models.Grade) (*models.UpdateResult, error)
	ListMine(ctx context.Context, identityEmail, queryEmail string) ([]*models.Submission, error)
}

type TokenService interface {
	Issue(identity auth.Identity) (string, error)
	Verify(token string) (auth.Identity, error)
	Validity() time.Duration
}

type Handler struct {
	assignments    AssignmentService
	submissions    SubmissionService
	tokens         TokenService
	logger         logging.Logger
	allowedOrigins []string
}

func NewHandler(as AssignmentService, ss SubmissionService, ts TokenService, l logging.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		assignments:    as,
		submissions:    ss,
		tokens:         ts,
		logger:         l.With("module", "http_handler"),
		allowedOrigins: allowedOrigins,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(newLoggingMiddleware(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Assignment server is running"))
	})

	r.Post("/jwt", h.handleIssueToken)
	r.Post("/logout", h.handleLogout)

	r.Post("/assignment", h.handleCreateAssignment)
	r.Get("/all-assignment", h.handleListAssignments)
	r.Get("/assignment/{id}", h.handleGetAssignment)

	r.Post("/submissions", h.handleCreateSubmission)
	r.Get("/submissions", h.handleListPendingSubmissions)
	r.Get("/submission/{id}", h.handleGetSubmission)
	r.Patch("/submission/{id}", h.handleGradeSubmission)

	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Patch("/assignment/{id}", h.handleUpdateAssignment)
		r.Delete("/rm-assignment/{id}", h.handleDeleteAssignment)
		r.Get("/my-assignment", h.handleMySubmissions)
	})

	return r
}
