package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portal-ads/internal/core/domain"
)

// handleSlotAds returns the live campaigns of the {slot} rotation in
// random order. Unknown slots result in HTTP 400. An empty rotation is an
// empty JSON array, not 204, so clients can render the slot placeholder.
func (h *Handler) handleSlotAds(w http.ResponseWriter, r *http.Request) {
	slot := domain.PlanTier(chi.URLParam(r, "slot"))
	ads, err := h.ads.SlotAds(r.Context(), slot)
	if err != nil {
		h.fail(w, r, "slot ads", err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, http.StatusOK, ads)
}
