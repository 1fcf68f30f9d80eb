package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portal-ads/internal/core/port"
	"portal-ads/internal/metrics"
)

const defaultMaxBody = 1 << 20

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases that execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	ads      port.AdUseCase
	popups   port.PopupUseCase
	content  port.ContentUseCase
	logger   *slog.Logger
	validate *validator.Validate
	maxBody  int64
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. maxBody caps
// JSON request bodies; zero uses 1 MiB.
func NewHandler(ads port.AdUseCase, popups port.PopupUseCase, content port.ContentUseCase, logger *slog.Logger, maxBody int64) *Handler {
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	h := &Handler{
		ads:      ads,
		popups:   popups,
		content:  content,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		maxBody:  maxBody,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.HTTP)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads/slots/{slot}", h.handleSlotAds)
		r.Post("/ads/{id}/view", h.handleAdView)
		r.Post("/ads/{id}/click", h.handleAdClick)
		r.Get("/ads/{id}/click", h.handleAdClickRedirect)

		r.Put("/advertisers", h.handleSaveCampaign)
		r.Put("/advertisers/{id}/popup-set", h.handleSavePopupSet)
		r.Get("/stats/overview", h.handleStatsOverview)

		r.Post("/popups/preview", h.handlePreviewPopups)
		r.Get("/popups", h.handlePagePopups)

		r.Get("/news/{id}", h.handleGetNews)
		r.Put("/news", h.handleSaveNews)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// decode reads a JSON body of at most maxBody bytes into dst. It writes the
// 400 response itself and reports false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail maps use case errors to status codes and logs unexpected ones.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, port.ErrInvalidPlan), errors.Is(err, port.ErrInvalidWindow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
