package domain

import (
	"time"

	"github.com/google/uuid"
)

// SaleStatus represents the lifecycle state of a sale.
type SaleStatus string

// Enumerated sale statuses. The wire values are Portuguese, matching the
// persisted column values.
const (
	SaleStatusPendente  SaleStatus = "pendente"
	SaleStatusPago      SaleStatus = "pago"
	SaleStatusCancelado SaleStatus = "cancelado"
	SaleStatusEntregue  SaleStatus = "entregue"
)

// Validate checks that the status is one of the enumerated values.
func (s SaleStatus) Validate() error {
	switch s {
	case SaleStatusPendente, SaleStatusPago, SaleStatusCancelado, SaleStatusEntregue:
		return nil
	default:
		return ErrInvalidSaleStatus
	}
}

// Sale represents a sale record ("venda"). Client and product references
// are optional and may dangle; no referential integrity is enforced at
// the application layer.
type Sale struct {
	ID         uuid.UUID  `json:"id"`
	ClienteID  *uuid.UUID `json:"cliente_id"`
	ProdutoID  *uuid.UUID `json:"produto_id"`
	Quantidade int        `json:"quantidade"`
	PrecoUnit  float64    `json:"preco_unit"`
	Total      float64    `json:"total"`
	Status     SaleStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

// NewSale creates a new Sale with a generated ID and UTC timestamps.
// Total is derived from quantity and unit price; the database keeps it in
// sync via a generated column. Returns an error if validation fails.
func NewSale(clienteID, produtoID *uuid.UUID, quantidade int, precoUnit float64, status SaleStatus) (*Sale, error) {
	now := time.Now().UTC()
	sale := &Sale{
		ID:         uuid.New(),
		ClienteID:  clienteID,
		ProdutoID:  produtoID,
		Quantidade: quantidade,
		PrecoUnit:  precoUnit,
		Total:      float64(quantidade) * precoUnit,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := sale.Validate(); err != nil {
		return nil, err
	}

	return sale, nil
}

// Validate checks if the Sale has valid data.
func (s *Sale) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}
	if s.Quantidade < 0 {
		return ErrNegativeNumber
	}
	if s.PrecoUnit < 0 {
		return ErrNegativeNumber
	}
	return s.Status.Validate()
}

// IsDeleted reports whether the sale has been soft deleted.
func (s *Sale) IsDeleted() bool {
	return s.DeletedAt != nil
}
