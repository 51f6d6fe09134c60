package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

func serveProduct(h *ProductHandler, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/produtos", h.List)
	r.Post("/produtos", h.Create)
	r.Get("/produtos/{id}", h.Get)
	r.Put("/produtos/{id}", h.Update)
	r.Delete("/produtos/{id}", h.Delete)
	r.Post("/produtos/{id}/restore", h.Restore)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestProduct(t *testing.T) *domain.Product {
	t.Helper()
	sku := "SKU-001"
	product, err := domain.NewProduct("Teclado", &sku, 199.9, 12, nil, true)
	require.NoError(t, err)
	return product
}

func TestProductList(t *testing.T) {
	t.Parallel()

	t.Run("passes price bounds to the store", func(t *testing.T) {
		t.Parallel()

		var gotParams store.ProductListParams
		mock := &mockProductStore{
			listFn: func(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
				gotParams = params
				return []*domain.Product{}, 0, nil
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodGet,
			"/produtos?search=teclado&min_price=10&max_price=200&order=preco.desc", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "teclado", gotParams.Search)
		require.NotNil(t, gotParams.MinPreco)
		assert.Equal(t, 10.0, *gotParams.MinPreco)
		require.NotNil(t, gotParams.MaxPreco)
		assert.Equal(t, 200.0, *gotParams.MaxPreco)
		assert.Equal(t, store.Order{Column: "preco", Ascending: false}, gotParams.Order)
	})

	t.Run("non numeric price bound is ignored", func(t *testing.T) {
		t.Parallel()

		var gotParams store.ProductListParams
		mock := &mockProductStore{
			listFn: func(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
				gotParams = params
				return []*domain.Product{}, 0, nil
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodGet, "/produtos?min_price=caro", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, gotParams.MinPreco)
	})

	t.Run("store failure responds 500", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			listFn: func(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
				return nil, 0, errors.New("boom")
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodGet, "/produtos", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Erro inesperado ao listar produtos.", decodeErrorResponse(t, w).Error)
	})
}

func TestProductCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates with defaults", func(t *testing.T) {
		t.Parallel()

		var created *domain.Product
		mock := &mockProductStore{
			createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				created = product
				return product, nil
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPost, "/produtos", `{"nome":"Mouse"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, created)
		assert.Equal(t, "Mouse", created.Nome)
		assert.Zero(t, created.Preco)
		assert.Zero(t, created.Estoque)
		assert.True(t, created.Ativo)
		assert.Nil(t, created.Sku)
	})

	t.Run("negative price responds 400", func(t *testing.T) {
		t.Parallel()

		handler := NewProductHandler(&mockProductStore{}, nil)

		w := serveProduct(handler, http.MethodPost, "/produtos", `{"nome":"Mouse","preco":-5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorResponse(t, w)
		assert.Equal(t, "Payload inválido", body.Error)
		require.NotEmpty(t, body.Details)
		assert.Equal(t, "preco", body.Details[0].Path)
	})

	t.Run("duplicate sku responds 409", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return nil, store.ErrSkuExists
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPost, "/produtos",
			`{"nome":"Teclado","sku":"SKU-001"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "SKU já existe.", decodeErrorResponse(t, w).Error)
	})
}

func TestProductUpdate(t *testing.T) {
	t.Parallel()

	product := newTestProduct(t)

	t.Run("applies the patch", func(t *testing.T) {
		t.Parallel()

		var gotPatch store.ProductPatch
		mock := &mockProductStore{
			updateFn: func(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
				gotPatch = patch
				return product, nil
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPut, "/produtos/"+product.ID.String(),
			`{"preco":149.9,"estoque":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotPatch.Preco)
		assert.Equal(t, 149.9, *gotPatch.Preco)
		require.NotNil(t, gotPatch.Estoque)
		assert.Equal(t, 3, *gotPatch.Estoque)
		assert.Nil(t, gotPatch.Nome)
	})

	t.Run("empty patch responds 400", func(t *testing.T) {
		t.Parallel()

		handler := NewProductHandler(&mockProductStore{}, nil)

		w := serveProduct(handler, http.MethodPut, "/produtos/"+product.ID.String(), `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorResponse(t, w)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "corpo vazio", body.Details[0].Message)
	})

	t.Run("sku conflict responds 409", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			updateFn: func(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
				return nil, store.ErrSkuExists
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPut, "/produtos/"+product.ID.String(),
			`{"sku":"SKU-002"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "SKU já existe.", decodeErrorResponse(t, w).Error)
	})

	t.Run("not found responds 404", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			updateFn: func(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
				return nil, store.ErrProductNotFound
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPut, "/produtos/"+product.ID.String(),
			`{"nome":"Teclado"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Produto não encontrado para atualizar.", decodeErrorResponse(t, w).Error)
	})
}

func TestProductDeleteAndRestore(t *testing.T) {
	t.Parallel()

	product := newTestProduct(t)

	t.Run("soft delete responds 204", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			softDeleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodDelete, "/produtos/"+product.ID.String(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete missing responds 404", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			softDeleteFn: func(ctx context.Context, id uuid.UUID) error {
				return store.ErrProductNotFound
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodDelete, "/produtos/"+product.ID.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Produto não encontrado para excluir.", decodeErrorResponse(t, w).Error)
	})

	t.Run("restore responds 200", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			restoreFn: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
				return product, nil
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPost, "/produtos/"+product.ID.String()+"/restore", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), product.ID.String())
	})

	t.Run("restore active responds 404", func(t *testing.T) {
		t.Parallel()

		mock := &mockProductStore{
			restoreFn: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
				return nil, store.ErrProductNotFound
			},
		}
		handler := NewProductHandler(mock, nil)

		w := serveProduct(handler, http.MethodPost, "/produtos/"+product.ID.String()+"/restore", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Produto não encontrado para restaurar.", decodeErrorResponse(t, w).Error)
	})
}
