package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/assignhub/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, map[string]string{"message": message})
}

// writeEmpty answers a lookup that found nothing.
func writeEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// parseJSON decodes the request body into v. An empty body leaves v untouched.
func parseJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusForbidden
	case errors.Is(err, common.ErrPermissionDenied),
		errors.Is(err, common.ErrInvalidID),
		errors.Is(err, common.ErrInvalidDifficulty),
		errors.Is(err, common.ErrInvalidPage),
		errors.Is(err, common.ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	} else {
		h.logger.Warn(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	message := err.Error()
	if errors.Is(err, common.ErrPermissionDenied) {
		message = common.ErrPermissionDenied.Error()
	}
	_ = writeMessage(w, status, message)
}
