package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portal-ads/internal/core/domain"
)

func (h *Handler) handleGetNews(w http.ResponseWriter, r *http.Request) {
	rec, err := h.content.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get news", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// handleSaveNews upserts an article. Fields left out of the body keep
// their stored value.
func (h *Handler) handleSaveNews(w http.ResponseWriter, r *http.Request) {
	var rec domain.ContentRecord
	if !h.decode(w, r, &rec) {
		return
	}
	if err := h.content.Save(r.Context(), &rec); err != nil {
		h.fail(w, r, "save news", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}
