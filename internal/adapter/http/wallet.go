package httpadapter

import (
	"net/http"

	"adwallet/internal/core/domain"
)

func (h *Handler) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.GetWallet(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	frac := int32(domain.Currency(wallet.Currency).Fraction)
	writeJSON(w, http.StatusOK, walletResponse{
		ID:       wallet.ID,
		Balance:  wallet.Balance.StringFixed(frac),
		Currency: wallet.Currency,
		Display:  domain.FormatMoney(wallet.Balance, wallet.Currency),
		Version:  wallet.Version,
		Updated:  wallet.UpdatedAt,
	})
}
