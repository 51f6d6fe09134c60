package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

// mockClientStore is a function-field implementation of store.ClientStore.
type mockClientStore struct {
	listFn       func(ctx context.Context, params store.ClientListParams) ([]*domain.Client, int, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Client, error)
	createFn     func(ctx context.Context, client *domain.Client) (*domain.Client, error)
	updateFn     func(ctx context.Context, id uuid.UUID, patch store.ClientPatch) (*domain.Client, error)
	softDeleteFn func(ctx context.Context, id uuid.UUID) error
	restoreFn    func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

func (m *mockClientStore) List(ctx context.Context, params store.ClientListParams) ([]*domain.Client, int, error) {
	return m.listFn(ctx, params)
}

func (m *mockClientStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Client, error) {
	return m.getByIDFn(ctx, id, deletion)
}

func (m *mockClientStore) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return m.createFn(ctx, client)
}

func (m *mockClientStore) Update(ctx context.Context, id uuid.UUID, patch store.ClientPatch) (*domain.Client, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockClientStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockClientStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return m.restoreFn(ctx, id)
}

// mockProductStore is a function-field implementation of store.ProductStore.
type mockProductStore struct {
	listFn       func(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Product, error)
	createFn     func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	updateFn     func(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error)
	softDeleteFn func(ctx context.Context, id uuid.UUID) error
	restoreFn    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

func (m *mockProductStore) List(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
	return m.listFn(ctx, params)
}

func (m *mockProductStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Product, error) {
	return m.getByIDFn(ctx, id, deletion)
}

func (m *mockProductStore) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return m.createFn(ctx, product)
}

func (m *mockProductStore) Update(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockProductStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockProductStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return m.restoreFn(ctx, id)
}

// mockSaleStore is a function-field implementation of store.SaleStore.
type mockSaleStore struct {
	listFn       func(ctx context.Context, params store.SaleListParams) ([]*domain.Sale, int, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Sale, error)
	createFn     func(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	updateFn     func(ctx context.Context, id uuid.UUID, patch store.SalePatch) (*domain.Sale, error)
	softDeleteFn func(ctx context.Context, id uuid.UUID) error
	restoreFn    func(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
}

func (m *mockSaleStore) List(ctx context.Context, params store.SaleListParams) ([]*domain.Sale, int, error) {
	return m.listFn(ctx, params)
}

func (m *mockSaleStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Sale, error) {
	return m.getByIDFn(ctx, id, deletion)
}

func (m *mockSaleStore) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	return m.createFn(ctx, sale)
}

func (m *mockSaleStore) Update(ctx context.Context, id uuid.UUID, patch store.SalePatch) (*domain.Sale, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockSaleStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockSaleStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	return m.restoreFn(ctx, id)
}
