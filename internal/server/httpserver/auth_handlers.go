package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/auth"
)

func (h *Handler) tokenCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if maxAge < 0 {
		c.Expires = time.Unix(0, 0)
	}
	return c
}

// handleIssueToken signs the posted identity object into the token cookie.
func (h *Handler) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var identity auth.Identity
	if err := parseJSON(r, &identity); err != nil {
		h.writeError(w, r, err)
		return
	}
	if identity == nil {
		h.writeError(w, r, fmt.Errorf("%w: identity object required", common.ErrInvalidPayload))
		return
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.tokenCookie(token, int(h.tokens.Validity().Seconds())))
	_ = writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleLogout clears the token cookie and echoes the request body.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := parseJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body == nil {
		body = map[string]any{}
	}

	http.SetCookie(w, h.tokenCookie("", -1))
	_ = writeJSON(w, http.StatusOK, body)
}

func identityEmail(r *http.Request) string {
	id, _ := IdentityFromContext(r.Context())
	return id.Email()
}
