package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"adwallet/internal/core/domain"
)

type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Required  string `json:"required,omitempty"`
	Available string `json:"available,omitempty"`
}

// writeDomainError maps err to a status code. Unexpected errors are logged
// and reported without details.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		insufficient *domain.InsufficientFundsError
		invalid      *domain.ValidationError
	)
	switch {
	case errors.Is(err, domain.ErrReconciliationRequired):
		h.logger.Error("operation left a discrepancy",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, domain.ErrReconciliationRequired.Error())
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:     insufficient.Error(),
			Required:  insufficient.Required.StringFixed(2),
			Available: insufficient.Available.StringFixed(2),
		})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error(), Field: invalid.Field})
	case errors.Is(err, domain.ErrInvalidFund):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "campaignFund"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrFundConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrTransient):
		h.logger.Warn("storage unavailable", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeError(w, http.StatusServiceUnavailable, "storage temporarily unavailable")
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
