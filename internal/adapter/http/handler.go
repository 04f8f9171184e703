package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adwallet/internal/core/port"
)

// Handler is the inbound HTTP adapter. It translates requests into
// FundingUseCase calls and domain errors into status codes.
type Handler struct {
	svc    port.FundingUseCase
	logger *slog.Logger
	health func(context.Context) error
	router chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithHealthCheck makes /healthz report failures of check as 503.
func WithHealthCheck(check func(context.Context) error) Option {
	return func(h *Handler) { h.health = check }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.FundingUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.logRequests)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/wallet", h.handleGetWallet)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})

		r.Get("/towns", h.handleTowns)
		r.Get("/products", h.handleProducts)
		r.Get("/keywords", h.handleKeywords)
		r.Get("/catalog", h.handleCatalog)
		r.Get("/reconciliation", h.handleReconciliation)
		r.Post("/reconciliation/{id}/resolve", h.handleResolveDiscrepancy)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.health(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			writeError(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
