package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/domain"
)

// SaleListParams holds the filters for listing sales. Date bounds apply
// to created_at and are inclusive.
type SaleListParams struct {
	Status    *domain.SaleStatus
	ClienteID *uuid.UUID
	ProdutoID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Deletion  DeletionFilter
	Order     Order
	Page      Page
}

// SalePatch carries the fields of a partial sale update. Nil fields are
// left untouched. Total is recomputed by the database whenever quantity
// or unit price change.
type SalePatch struct {
	ClienteID  *uuid.UUID
	ProdutoID  *uuid.UUID
	Quantidade *int
	PrecoUnit  *float64
	Status     *domain.SaleStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p SalePatch) IsEmpty() bool {
	return p.ClienteID == nil && p.ProdutoID == nil && p.Quantidade == nil &&
		p.PrecoUnit == nil && p.Status == nil
}

// SaleStore defines the interface for sale data persistence.
type SaleStore interface {
	// List returns the matching page of sales plus the total count of
	// all matching rows regardless of pagination.
	List(ctx context.Context, params SaleListParams) ([]*domain.Sale, int, error)

	// GetByID retrieves a sale by ID, restricted by the deletion filter.
	// Returns ErrSaleNotFound if no matching row exists.
	GetByID(ctx context.Context, id uuid.UUID, deletion DeletionFilter) (*domain.Sale, error)

	// Create saves a new sale to the store.
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)

	// Update applies a partial update to a non-deleted sale, always
	// refreshing updated_at. Returns ErrSaleNotFound if the sale is
	// missing or soft deleted.
	Update(ctx context.Context, id uuid.UUID, patch SalePatch) (*domain.Sale, error)

	// SoftDelete stamps deleted_at on a currently-active sale.
	// Returns ErrSaleNotFound if the sale is missing or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Restore clears deleted_at on a currently-deleted sale and refreshes
	// updated_at. Returns ErrSaleNotFound otherwise.
	Restore(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
}
