package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer record ("cliente").
// Optional contact fields are nullable; a nil DeletedAt means the record
// is active for default listing purposes.
type Client struct {
	ID        uuid.UUID  `json:"id"`
	Nome      string     `json:"nome"`
	Email     *string    `json:"email"`
	Telefone  *string    `json:"telefone"`
	Endereco  *string    `json:"endereco"`
	Ativo     bool       `json:"ativo"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// NewClient creates a new Client with a generated ID and UTC timestamps.
// Returns an error if validation fails.
func NewClient(nome string, email, telefone, endereco *string, ativo bool) (*Client, error) {
	now := time.Now().UTC()
	client := &Client{
		ID:        uuid.New(),
		Nome:      nome,
		Email:     email,
		Telefone:  telefone,
		Endereco:  endereco,
		Ativo:     ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

// Validate checks if the Client has valid data.
func (c *Client) Validate() error {
	if c.ID == uuid.Nil {
		return ErrInvalidID
	}
	if c.Nome == "" {
		return ErrEmptyName
	}
	return nil
}

// IsDeleted reports whether the client has been soft deleted.
func (c *Client) IsDeleted() bool {
	return c.DeletedAt != nil
}
