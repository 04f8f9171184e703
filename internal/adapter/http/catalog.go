package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) handleTowns(w http.ResponseWriter, r *http.Request) {
	towns, err := h.svc.Towns(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, towns)
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Products(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleKeywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.svc.Keywords(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keywords)
}

// handleCatalog returns towns, products and keywords in one response so a
// campaign form can be filled with a single request.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	var resp catalogResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		resp.Towns, err = h.svc.Towns(ctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Products, err = h.svc.Products(ctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Keywords, err = h.svc.Keywords(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleReconciliation(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Discrepancies(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]discrepancyResponse, len(list))
	for i, d := range list {
		out[i] = discrepancyResponse{
			ID:          d.ID.String(),
			OperationID: d.OperationID.String(),
			Operation:   string(d.Operation),
			CampaignID:  d.CampaignID,
			Amount:      d.Amount.StringFixed(2),
			Reason:      d.Reason,
			Resolved:    d.Resolved,
			CreatedAt:   d.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleResolveDiscrepancy(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid discrepancy id")
		return
	}
	if err := h.svc.ResolveDiscrepancy(r.Context(), id); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
