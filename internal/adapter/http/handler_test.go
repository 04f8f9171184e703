package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adwallet/internal/adapter/memory"
	"adwallet/internal/adapter/usecase"
	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
	"adwallet/internal/core/port/mocks"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testCatalog() *memory.Catalog {
	return memory.NewCatalog(
		[]domain.Town{{ID: 1, Name: "Kraków"}, {ID: 2, Name: "Gdańsk"}},
		[]domain.Product{{ID: 1, Name: "Boots"}, {ID: 2, Name: "Sandals"}},
		[]domain.Keyword{{ID: 1, Name: "boots"}, {ID: 2, Name: "winter"}},
	)
}

func newService(ledger port.Ledger, store port.CampaignStore, recon port.ReconciliationLog) *usecase.FundingUseCase {
	opts := usecase.DefaultOptions()
	opts.Retry = usecase.RetryPolicy{MaxTries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
	return usecase.NewFundingUseCase(ledger, store, testCatalog(), recon, discardLogger(), opts)
}

func newServer(t *testing.T, balance string) *httptest.Server {
	t.Helper()
	svc := newService(
		memory.NewLedger(decimal.RequireFromString(balance), "USD"),
		memory.NewCampaignStore("USD"),
		memory.NewReconciliationLog())
	srv := httptest.NewServer(NewHandler(svc, discardLogger()).Router())
	t.Cleanup(srv.Close)
	return srv
}

const createBody = `{
	"name": "Winter boots",
	"status": "on",
	"town": "Kraków",
	"radius": 10,
	"keywords": [{"id": 1}, {"id": 2}],
	"bidAmount": "2.50",
	"minAmount": 1,
	"campaignFund": "60",
	"productId": 1
}`

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(bytes.TrimSpace(raw)) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func getList(t *testing.T, srv *httptest.Server, path string) []map[string]any {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCampaignLifecycle(t *testing.T) {
	srv := newServer(t, "100")

	status, c := do(t, srv, http.MethodPost, "/api/v1/campaigns", createBody)
	require.Equal(t, http.StatusCreated, status, c)
	assert.Equal(t, "60.00", c["campaignFund"])
	assert.Equal(t, "2.50", c["bidAmount"])
	assert.Equal(t, []any{
		map[string]any{"id": float64(1), "name": "boots"},
		map[string]any{"id": float64(2), "name": "winter"},
	}, c["keywords"])

	_, wallet := do(t, srv, http.MethodGet, "/api/v1/wallet", "")
	assert.Equal(t, "40.00", wallet["balance"])
	assert.Equal(t, "$40.00", wallet["display"])
	assert.Equal(t, "USD", wallet["currency"])

	status, c = do(t, srv, http.MethodPatch, "/api/v1/campaigns/1", `{"campaignFund": "90.50", "name": "Boots"}`)
	require.Equal(t, http.StatusOK, status, c)
	assert.Equal(t, "90.50", c["campaignFund"])
	assert.Equal(t, "Boots", c["name"])

	_, wallet = do(t, srv, http.MethodGet, "/api/v1/wallet", "")
	assert.Equal(t, "9.50", wallet["balance"])

	status, c = do(t, srv, http.MethodGet, "/api/v1/campaigns/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Boots", c["productName"])

	list := getList(t, srv, "/api/v1/campaigns")
	require.Len(t, list, 1)

	status, _ = do(t, srv, http.MethodDelete, "/api/v1/campaigns/1", "")
	assert.Equal(t, http.StatusNoContent, status)

	_, wallet = do(t, srv, http.MethodGet, "/api/v1/wallet", "")
	assert.Equal(t, "100.00", wallet["balance"])

	status, _ = do(t, srv, http.MethodGet, "/api/v1/campaigns/1", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCampaignInsufficientFunds(t *testing.T) {
	srv := newServer(t, "10")

	status, body := do(t, srv, http.MethodPost, "/api/v1/campaigns", createBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "60.00", body["required"])
	assert.Equal(t, "10.00", body["available"])
	assert.Contains(t, body["error"], "insufficient funds")

	assert.Empty(t, getList(t, srv, "/api/v1/campaigns"))
}

func TestCreateCampaignBadRequests(t *testing.T) {
	srv := newServer(t, "100")

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero fund", strings.Replace(createBody, `"60"`, `"0"`, 1), "campaignFund"},
		{"min above bid", strings.Replace(createBody, `"minAmount": 1`, `"minAmount": 3`, 1), "minAmount"},
		{"unknown town", strings.Replace(createBody, "Kraków", "Atlantis", 1), "town"},
		{"unknown keyword", strings.Replace(createBody, `{"id": 2}`, `{"id": 99}`, 1), "keywords"},
		{"huge fund", strings.Replace(createBody, `"60"`, `"1e50000000"`, 1), "campaignFund"},
		{"huge bid", strings.Replace(createBody, `"2.50"`, `1e13`, 1), "bidAmount"},
		{"huge radius", strings.Replace(createBody, `"radius": 10`, `"radius": 3000000000`, 1), "radius"},
		{"malformed", `{"name":`, ""},
		{"unknown field", `{"budget": 5}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, srv, http.MethodPost, "/api/v1/campaigns", tt.body)
			assert.Equal(t, http.StatusBadRequest, status, body)
			if tt.field != "" {
				assert.Equal(t, tt.field, body["field"])
			}
		})
	}

	_, wallet := do(t, srv, http.MethodGet, "/api/v1/wallet", "")
	assert.Equal(t, "100.00", wallet["balance"])
}

func TestCampaignIDMustBeNumeric(t *testing.T) {
	srv := newServer(t, "100")
	status, _ := do(t, srv, http.MethodGet, "/api/v1/campaigns/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newServer(t, "100")

	assert.Len(t, getList(t, srv, "/api/v1/towns"), 2)
	assert.Len(t, getList(t, srv, "/api/v1/products"), 2)
	assert.Len(t, getList(t, srv, "/api/v1/keywords"), 2)

	status, body := do(t, srv, http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["towns"], 2)
	assert.Len(t, body["products"], 2)
	assert.Len(t, body["keywords"], 2)
}

func TestTransientStorageErrorIs503(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	store.EXPECT().List(mock.Anything).Return(nil, domain.Transient(errors.New("connection reset")))

	svc := newService(memory.NewLedger(decimal.RequireFromString("10"), "USD"), store, memory.NewReconciliationLog())
	srv := httptest.NewServer(NewHandler(svc, discardLogger()).Router())
	defer srv.Close()

	status, body := do(t, srv, http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "storage temporarily unavailable", body["error"])
}

func TestFailedCompensationIsReported(t *testing.T) {
	ledger := mocks.NewMockLedger(t)
	ledger.EXPECT().Debit(mock.Anything, mock.Anything).Return(decimal.RequireFromString("40"), nil)
	ledger.EXPECT().Adjust(mock.Anything, mock.Anything).Return(decimal.Zero, errors.New("ledger offline"))
	store := mocks.NewMockCampaignStore(t)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	svc := newService(ledger, store, memory.NewReconciliationLog())
	srv := httptest.NewServer(NewHandler(svc, discardLogger()).Router())
	defer srv.Close()

	status, body := do(t, srv, http.MethodPost, "/api/v1/campaigns", createBody)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, domain.ErrReconciliationRequired.Error(), body["error"])

	flags := getList(t, srv, "/api/v1/reconciliation")
	require.Len(t, flags, 1)
	assert.Equal(t, "create", flags[0]["operation"])
	assert.Equal(t, "-60.00", flags[0]["amount"])
	assert.Equal(t, false, flags[0]["resolved"])

	status, _ = do(t, srv, http.MethodPost, "/api/v1/reconciliation/"+flags[0]["id"].(string)+"/resolve", "")
	assert.Equal(t, http.StatusNoContent, status)
	flags = getList(t, srv, "/api/v1/reconciliation")
	require.Len(t, flags, 1)
	assert.Equal(t, true, flags[0]["resolved"])
}

func TestResolveUnknownDiscrepancy(t *testing.T) {
	srv := newServer(t, "100")

	status, _ := do(t, srv, http.MethodPost, "/api/v1/reconciliation/"+uuid.NewString()+"/resolve", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body := do(t, srv, http.MethodPost, "/api/v1/reconciliation/42/resolve", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid discrepancy id", body["error"])
}

func TestHealth(t *testing.T) {
	svc := newService(memory.NewLedger(decimal.Zero, "USD"), memory.NewCampaignStore("USD"), memory.NewReconciliationLog())

	ok := httptest.NewRecorder()
	NewHandler(svc, discardLogger()).Router().ServeHTTP(ok, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, ok.Code)

	down := httptest.NewRecorder()
	h := NewHandler(svc, discardLogger(), WithHealthCheck(func(context.Context) error { return errors.New("db down") }))
	h.Router().ServeHTTP(down, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, down.Code)
}
