package httpserver

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 10 << 20

// thumbField is the multipart field carrying an optional thumbnail image.
const thumbField = "thumb"

type assignmentRequest struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Date         string            `json:"date"`
	Difficulty   models.Difficulty `json:"difficulty"`
	Marks        number            `json:"marks"`
	ThumbnailURL string            `json:"thumbnailUrl"`
	Email        string            `json:"email"`
}

func (req assignmentRequest) fields() models.AssignmentFields {
	return models.AssignmentFields{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Difficulty:   req.Difficulty,
		Marks:        float64(req.Marks),
		ThumbnailURL: req.ThumbnailURL,
	}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// readAssignment decodes either a multipart form (with an optional thumb
// file) or a JSON body.
func readAssignment(r *http.Request) (assignmentRequest, *models.Upload, error) {
	var req assignmentRequest

	if !isMultipart(r) {
		if err := parseJSON(r, &req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return req, nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}

	marks, err := parseNumber(r.FormValue("marks"))
	if err != nil {
		return req, nil, fmt.Errorf("%w: marks: %v", common.ErrInvalidPayload, err)
	}

	req = assignmentRequest{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Date:         r.FormValue("date"),
		Difficulty:   models.Difficulty(r.FormValue("difficulty")),
		Marks:        number(marks),
		ThumbnailURL: r.FormValue("thumbnailUrl"),
		Email:        r.FormValue("email"),
	}

	file, header, err := r.FormFile(thumbField)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}
	if err != nil {
		return req, nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}

	return req, &models.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *Handler) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	req, upload, err := readAssignment(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	f := req.fields()

	a := &models.Assignment{
		Title:        f.Title,
		Description:  f.Description,
		Date:         f.Date,
		Difficulty:   f.Difficulty,
		Marks:        f.Marks,
		ThumbnailURL: f.ThumbnailURL,
		Email:        req.Email,
	}

	res, err := h.assignments.Create(r.Context(), a, upload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.assignments.List(r.Context(), q.Get("page"), q.Get("difficulty"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleGetAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := h.assignments.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, common.ErrorNotFound) {
		writeEmpty(w)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	req, upload, err := readAssignment(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	f := req.fields()

	res, err := h.assignments.Update(r.Context(), chi.URLParam(r, "id"), f, upload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	res, err := h.assignments.Delete(r.Context(), chi.URLParam(r, "id"), identityEmail(r), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, res)
}
