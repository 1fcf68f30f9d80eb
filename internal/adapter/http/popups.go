package httpadapter

import (
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"portal-ads/internal/core/domain"
)

const (
	visitorCookie    = "portal_visitor"
	visitorCookieAge = 365 * 24 * time.Hour
)

// visitor ids end up in seen-store keys.
var visitorID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// handlePreviewPopups normalizes a popup set without storing it, so the
// editor can show what would be saved.
func (h *Handler) handlePreviewPopups(w http.ResponseWriter, r *http.Request) {
	var in domain.PopupSetInput
	if !h.decode(w, r, &in) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.popups.Preview(in))
}

// handlePagePopups returns the popups to show on ?page=. The visitor is
// taken from ?visitor=, then from the visitor cookie; a new visitor gets a
// fresh id cookie. Ids outside [A-Za-z0-9_-]{1,64} are ignored.
func (h *Handler) handlePagePopups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := domain.TargetPage(q.Get("page"))
	if page == "" {
		page = domain.PageHome
	}

	visitor := q.Get("visitor")
	if !visitorID.MatchString(visitor) {
		visitor = ""
		if c, err := r.Cookie(visitorCookie); err == nil && visitorID.MatchString(c.Value) {
			visitor = c.Value
		}
	}
	if visitor == "" {
		visitor = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     visitorCookie,
			Value:    visitor,
			Path:     "/",
			MaxAge:   int(visitorCookieAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	items, err := h.popups.PopupsForPage(r.Context(), page, visitor)
	if err != nil {
		h.fail(w, r, "page popups", err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, http.StatusOK, items)
}
