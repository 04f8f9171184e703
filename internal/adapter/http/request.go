package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type keywordDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// campaignRequest is the body of POST /campaigns. Amounts accept JSON
// numbers or strings.
type campaignRequest struct {
	Name         string          `json:"name"`
	Status       string          `json:"status"`
	Town         string          `json:"town"`
	Radius       int             `json:"radius"`
	Keywords     []keywordDTO    `json:"keywords"`
	BidAmount    decimal.Decimal `json:"bidAmount"`
	MinAmount    decimal.Decimal `json:"minAmount"`
	CampaignFund decimal.Decimal `json:"campaignFund"`
	ProductID    int64           `json:"productId"`
}

func (req campaignRequest) draft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Name:         req.Name,
		Status:       domain.Status(req.Status),
		Town:         req.Town,
		Radius:       req.Radius,
		Keywords:     toKeywords(req.Keywords),
		BidAmount:    req.BidAmount,
		MinAmount:    req.MinAmount,
		CampaignFund: req.CampaignFund,
		ProductID:    req.ProductID,
	}
}

// patchRequest is the body of PATCH /campaigns/{id}. Absent fields are
// left unchanged.
type patchRequest struct {
	Name         *string          `json:"name"`
	Status       *string          `json:"status"`
	Town         *string          `json:"town"`
	Radius       *int             `json:"radius"`
	Keywords     []keywordDTO     `json:"keywords"`
	BidAmount    *decimal.Decimal `json:"bidAmount"`
	MinAmount    *decimal.Decimal `json:"minAmount"`
	CampaignFund *decimal.Decimal `json:"campaignFund"`
	ProductID    *int64           `json:"productId"`
}

func (req patchRequest) patch() domain.CampaignPatch {
	p := domain.CampaignPatch{
		Name:         req.Name,
		Town:         req.Town,
		Radius:       req.Radius,
		BidAmount:    req.BidAmount,
		MinAmount:    req.MinAmount,
		CampaignFund: req.CampaignFund,
		ProductID:    req.ProductID,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		p.Status = &s
	}
	if req.Keywords != nil {
		p.Keywords = toKeywords(req.Keywords)
	}
	return p
}

func toKeywords(in []keywordDTO) []domain.Keyword {
	out := make([]domain.Keyword, len(in))
	for i, k := range in {
		out[i] = domain.Keyword{ID: k.ID, Name: k.Name}
	}
	return out
}

type campaignResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Status       string           `json:"status"`
	Town         string           `json:"town"`
	Radius       int              `json:"radius"`
	Keywords     []domain.Keyword `json:"keywords"`
	BidAmount    string           `json:"bidAmount"`
	MinAmount    string           `json:"minAmount"`
	CampaignFund string           `json:"campaignFund"`
	ProductID    int64            `json:"productId"`
	ProductName  string           `json:"productName,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		Status:       string(c.Status),
		Town:         c.Town,
		Radius:       c.Radius,
		Keywords:     c.Keywords,
		BidAmount:    c.BidAmount.StringFixed(2),
		MinAmount:    c.MinAmount.StringFixed(2),
		CampaignFund: c.CampaignFund.StringFixed(2),
		ProductID:    c.ProductID,
		ProductName:  c.ProductName,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type walletResponse struct {
	ID       int64     `json:"id"`
	Balance  string    `json:"balance"`
	Currency string    `json:"currency"`
	Display  string    `json:"display"`
	Version  int64     `json:"version"`
	Updated  time.Time `json:"updatedAt"`
}

type discrepancyResponse struct {
	ID          string    `json:"id"`
	OperationID string    `json:"operationId"`
	Operation   string    `json:"operation"`
	CampaignID  int64     `json:"campaignId,omitempty"`
	Amount      string    `json:"amount"`
	Reason      string    `json:"reason"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"createdAt"`
}

type catalogResponse struct {
	Towns    []domain.Town    `json:"towns"`
	Products []domain.Product `json:"products"`
	Keywords []domain.Keyword `json:"keywords"`
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON: unexpected data after object")
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid campaign id %q", raw)
	}
	return id, nil
}
