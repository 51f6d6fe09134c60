package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/domain"
)

// ClientListParams holds the filters for listing clients.
// Search matches nome, email and telefone case-insensitively, OR-combined.
type ClientListParams struct {
	Search   string
	Ativo    *bool
	Deletion DeletionFilter
	Order    Order
	Page     Page
}

// ClientPatch carries the fields of a partial client update. Nil fields
// are left untouched.
type ClientPatch struct {
	Nome     *string
	Email    *string
	Telefone *string
	Endereco *string
	Ativo    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil && p.Telefone == nil &&
		p.Endereco == nil && p.Ativo == nil
}

// ClientStore defines the interface for client data persistence.
type ClientStore interface {
	// List returns the matching page of clients plus the total count of
	// all matching rows regardless of pagination.
	List(ctx context.Context, params ClientListParams) ([]*domain.Client, int, error)

	// GetByID retrieves a client by ID, restricted by the deletion filter.
	// Returns ErrClientNotFound if no matching row exists.
	GetByID(ctx context.Context, id uuid.UUID, deletion DeletionFilter) (*domain.Client, error)

	// Create saves a new client to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)

	// Update applies a partial update to a non-deleted client, always
	// refreshing updated_at. Returns ErrClientNotFound if the client is
	// missing or soft deleted, ErrEmailExists on a uniqueness conflict.
	Update(ctx context.Context, id uuid.UUID, patch ClientPatch) (*domain.Client, error)

	// SoftDelete stamps deleted_at on a currently-active client.
	// Returns ErrClientNotFound if the client is missing or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Restore clears deleted_at on a currently-deleted client and
	// refreshes updated_at. Returns ErrClientNotFound otherwise.
	Restore(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
