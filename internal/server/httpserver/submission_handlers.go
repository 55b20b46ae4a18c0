package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type submissionRequest struct {
	AssignmentID string `json:"assignmentId"`
	Title        string `json:"title"`
	Marks        number `json:"marks"`
	PDFLink      string `json:"pdfLink"`
	Note         string `json:"note"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

type gradeRequest struct {
	Status      string `json:"status"`
	Feedback    string `json:"feedback"`
	ResultMarks number `json:"result_marks"`
}

func (h *Handler) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.submissions.Create(r.Context(), &models.Submission{
		AssignmentID: req.AssignmentID,
		Title:        req.Title,
		Marks:        float64(req.Marks),
		PDFLink:      req.PDFLink,
		Note:         req.Note,
		Name:         req.Name,
		Email:        req.Email,
		Status:       req.Status,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListPendingSubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.submissions.ListPending(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	s, err := h.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, common.ErrorNotFound) {
		writeEmpty(w)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleGradeSubmission(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.submissions.Grade(r.Context(), chi.URLParam(r, "id"), models.Grade{
		Status:      req.Status,
		Feedback:    req.Feedback,
		ResultMarks: float64(req.ResultMarks),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, res)
}

// handleMySubmissions lists the caller's submissions; ?email must name the
// authenticated identity.
func (h *Handler) handleMySubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.submissions.ListMine(r.Context(), identityEmail(r), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, list)
}
