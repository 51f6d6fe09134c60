package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendify/vendify-api/internal/config"
	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

// stub stores with fixed results, enough to exercise routing.

type stubClientStore struct{}

func (s *stubClientStore) List(ctx context.Context, params store.ClientListParams) ([]*domain.Client, int, error) {
	return []*domain.Client{}, 0, nil
}

func (s *stubClientStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Client, error) {
	return nil, store.ErrClientNotFound
}

func (s *stubClientStore) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return client, nil
}

func (s *stubClientStore) Update(ctx context.Context, id uuid.UUID, patch store.ClientPatch) (*domain.Client, error) {
	return nil, store.ErrClientNotFound
}

func (s *stubClientStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return store.ErrClientNotFound
}

func (s *stubClientStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return nil, store.ErrClientNotFound
}

type stubProductStore struct{}

func (s *stubProductStore) List(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
	return []*domain.Product{}, 0, nil
}

func (s *stubProductStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Product, error) {
	return nil, store.ErrProductNotFound
}

func (s *stubProductStore) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (s *stubProductStore) Update(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
	return nil, store.ErrProductNotFound
}

func (s *stubProductStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return store.ErrProductNotFound
}

func (s *stubProductStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return nil, store.ErrProductNotFound
}

type stubSaleStore struct{}

func (s *stubSaleStore) List(ctx context.Context, params store.SaleListParams) ([]*domain.Sale, int, error) {
	return []*domain.Sale{}, 0, nil
}

func (s *stubSaleStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Sale, error) {
	return nil, store.ErrSaleNotFound
}

func (s *stubSaleStore) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	return sale, nil
}

func (s *stubSaleStore) Update(ctx context.Context, id uuid.UUID, patch store.SalePatch) (*domain.Sale, error) {
	return nil, store.ErrSaleNotFound
}

func (s *stubSaleStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return store.ErrSaleNotFound
}

func (s *stubSaleStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	return nil, store.ErrSaleNotFound
}

func newTestApplication() *application {
	cfg := &config.Config{}
	cfg.Server.Port = 3000
	cfg.Server.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.RateLimit.WindowSeconds = 60
	cfg.RateLimit.Max = 1000

	return &application{
		config:       cfg,
		logger:       slog.Default(),
		clientStore:  &stubClientStore{},
		productStore: &stubProductStore{},
		saleStore:    &stubSaleStore{},
	}
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{name: "banner", method: http.MethodGet, target: "/", expectedStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, target: "/health", expectedStatus: http.StatusOK},
		{name: "docs page", method: http.MethodGet, target: "/docs", expectedStatus: http.StatusOK},
		{name: "docs json", method: http.MethodGet, target: "/docs.json", expectedStatus: http.StatusOK},
		{name: "list clients", method: http.MethodGet, target: "/clientes", expectedStatus: http.StatusOK},
		{name: "list products", method: http.MethodGet, target: "/produtos", expectedStatus: http.StatusOK},
		{name: "list sales", method: http.MethodGet, target: "/vendas", expectedStatus: http.StatusOK},
		{name: "missing client", method: http.MethodGet, target: "/clientes/" + uuid.NewString(), expectedStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, target: "/usuarios", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestRouterUnknownRouteEnvelope(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/usuarios", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rota não encontrada", body.Error)
	assert.NotEmpty(t, body.RequestID)
}

func TestRouterAssignsRequestID(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
