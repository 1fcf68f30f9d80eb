package httpadapter

import (
	"net/http"

	"portal-ads/internal/core/port"
)

// handleStatsOverview returns view and click totals. The optional
// `advertiser_id` query parameter narrows them to one advertiser.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var req port.StatsReq
	if id := r.URL.Query().Get("advertiser_id"); id != "" {
		req.AdvertiserID = &id
	}

	stats, err := h.ads.GetStats(r.Context(), req)
	if err != nil {
		h.fail(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
