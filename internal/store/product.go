package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/domain"
)

// ProductListParams holds the filters for listing products.
// Search matches nome and sku case-insensitively, OR-combined.
type ProductListParams struct {
	Search   string
	Ativo    *bool
	MinPreco *float64
	MaxPreco *float64
	Deletion DeletionFilter
	Order    Order
	Page     Page
}

// ProductPatch carries the fields of a partial product update. Nil fields
// are left untouched.
type ProductPatch struct {
	Nome      *string
	Sku       *string
	Preco     *float64
	Estoque   *int
	Descricao *string
	Ativo     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Nome == nil && p.Sku == nil && p.Preco == nil &&
		p.Estoque == nil && p.Descricao == nil && p.Ativo == nil
}

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// List returns the matching page of products plus the total count of
	// all matching rows regardless of pagination.
	List(ctx context.Context, params ProductListParams) ([]*domain.Product, int, error)

	// GetByID retrieves a product by ID, restricted by the deletion filter.
	// Returns ErrProductNotFound if no matching row exists.
	GetByID(ctx context.Context, id uuid.UUID, deletion DeletionFilter) (*domain.Product, error)

	// Create saves a new product to the store.
	// Returns ErrSkuExists if the SKU is already taken.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Update applies a partial update to a non-deleted product, always
	// refreshing updated_at. Returns ErrProductNotFound if the product is
	// missing or soft deleted, ErrSkuExists on a uniqueness conflict.
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (*domain.Product, error)

	// SoftDelete stamps deleted_at on a currently-active product.
	// Returns ErrProductNotFound if the product is missing or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Restore clears deleted_at on a currently-deleted product and
	// refreshes updated_at. Returns ErrProductNotFound otherwise.
	Restore(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}
