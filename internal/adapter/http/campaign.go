package httpadapter

import (
	"net/http"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]campaignResponse, len(campaigns))
	for i, c := range campaigns {
		out[i] = newCampaignResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateCampaign reserves the requested fund from the wallet and
// stores the campaign. It answers 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.draft())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignResponse(*c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleUpdateCampaign applies a partial edit. A changed campaignFund moves
// the difference between the wallet and the campaign.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req patchRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), id, req.patch())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.svc.DeleteCampaign(r.Context(), id); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
