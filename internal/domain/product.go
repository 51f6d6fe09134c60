package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item ("produto").
// SKU is optional but unique when present. Price and stock must be
// non-negative.
type Product struct {
	ID        uuid.UUID  `json:"id"`
	Nome      string     `json:"nome"`
	Sku       *string    `json:"sku"`
	Preco     float64    `json:"preco"`
	Estoque   int        `json:"estoque"`
	Descricao *string    `json:"descricao"`
	Ativo     bool       `json:"ativo"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// NewProduct creates a new Product with a generated ID and UTC timestamps.
// Returns an error if validation fails.
func NewProduct(nome string, sku *string, preco float64, estoque int, descricao *string, ativo bool) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		ID:        uuid.New(),
		Nome:      nome,
		Sku:       sku,
		Preco:     preco,
		Estoque:   estoque,
		Descricao: descricao,
		Ativo:     ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrInvalidID
	}
	if p.Nome == "" {
		return ErrEmptyName
	}
	if p.Preco < 0 {
		return ErrNegativeNumber
	}
	if p.Estoque < 0 {
		return ErrNegativeNumber
	}
	return nil
}

// IsDeleted reports whether the product has been soft deleted.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
