package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portal-ads/internal/core/port"
)

type clickResponse struct {
	URL string `json:"url"`
}

// handleAdView records a view reported by a client that rendered the ad
// itself. It always answers 202.
func (h *Handler) handleAdView(w http.ResponseWriter, r *http.Request) {
	h.ads.RegisterView(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusAccepted)
}

// handleAdClick records a click and returns the destination URL, empty
// when the campaign has no safe one. Unknown campaigns result in 404.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	target, err := h.ads.RegisterClick(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "click", err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, clickResponse{URL: target})
}

// handleAdClickRedirect records a click and redirects to the campaign's
// external URL. Campaigns without a safe URL answer 204. Internal errors
// are logged and treated as 404 to avoid leaking information.
func (h *Handler) handleAdClickRedirect(w http.ResponseWriter, r *http.Request) {
	target, err := h.ads.RegisterClick(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	if target == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
