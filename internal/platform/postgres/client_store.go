package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vendify/vendify-api/internal/domain"
	"github.com/vendify/vendify-api/internal/store"
)

const clientColumns = "id, nome, email, telefone, endereco, ativo, created_at, updated_at, deleted_at"

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClientStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the
// ClientStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresClientStore(db *sql.DB, logger *slog.Logger) *PostgresClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore interface
var _ store.ClientStore = (*PostgresClientStore)(nil)

func scanClient(row interface{ Scan(...any) error }) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Endereco,
		&c.Ativo, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func clientListFilter(params store.ClientListParams) *queryFilter {
	f := &queryFilter{}
	f.deletion(params.Deletion)
	if params.Ativo != nil {
		f.add("ativo = $%d", *params.Ativo)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		f.add("(nome ILIKE $%d OR email ILIKE $%d OR telefone ILIKE $%d)",
			pattern, pattern, pattern)
	}
	return f
}

// List implements store.ClientStore.List
func (s *PostgresClientStore) List(ctx context.Context, params store.ClientListParams) ([]*domain.Client, int, error) {
	f := clientListFilter(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM clientes" + f.where()
	if err := s.db.QueryRowContext(ctx, countQuery, f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", MapError(err))
	}

	query := "SELECT " + clientColumns + " FROM clientes" + f.where() +
		orderLimitSQL(params.Order, params.Page)
	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate client rows: %w", err)
	}

	return clients, total, nil
}

// GetByID implements store.ClientStore.GetByID
func (s *PostgresClientStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Client, error) {
	f := &queryFilter{}
	f.deletion(deletion)
	f.add("id = $%d", id)

	query := "SELECT " + clientColumns + " FROM clientes" + f.where()
	client, err := scanClient(s.db.QueryRowContext(ctx, query, f.args...))
	if err != nil {
		return nil, mapNotFound(err, store.ErrClientNotFound)
	}
	return client, nil
}

// Create implements store.ClientStore.Create
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO clientes (id, nome, email, telefone, endereco, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + clientColumns
	created, err := scanClient(s.db.QueryRowContext(ctx, query,
		client.ID, client.Nome, client.Email, client.Telefone,
		client.Endereco, client.Ativo, client.CreatedAt, client.UpdatedAt))
	if err != nil {
		return nil, mapUniqueViolation(err, store.ErrEmailExists)
	}

	s.logger.DebugContext(ctx, "client created", slog.String("client_id", created.ID.String()))
	return created, nil
}

// Update implements store.ClientStore.Update
// Only non-deleted clients can be updated; updated_at is always refreshed.
func (s *PostgresClientStore) Update(ctx context.Context, id uuid.UUID, patch store.ClientPatch) (*domain.Client, error) {
	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	set := []string{}
	args := []any{}
	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Nome != nil {
		appendSet("nome", *patch.Nome)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.Telefone != nil {
		appendSet("telefone", *patch.Telefone)
	}
	if patch.Endereco != nil {
		appendSet("endereco", *patch.Endereco)
	}
	if patch.Ativo != nil {
		appendSet("ativo", *patch.Ativo)
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE clientes SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s",
		strings.Join(set, ", "), len(args), clientColumns)

	client, err := scanClient(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, mapUniqueViolation(err, store.ErrEmailExists)
		}
		return nil, mapNotFound(err, store.ErrClientNotFound)
	}
	return client, nil
}

// SoftDelete implements store.ClientStore.SoftDelete
func (s *PostgresClientStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE clientes SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to soft delete client: %w", MapError(err))
	}
	return checkRowsAffected(result, store.ErrClientNotFound)
}

// Restore implements store.ClientStore.Restore
func (s *PostgresClientStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `UPDATE clientes SET deleted_at = NULL, updated_at = $1
		WHERE id = $2 AND deleted_at IS NOT NULL
		RETURNING ` + clientColumns
	client, err := scanClient(s.db.QueryRowContext(ctx, query, time.Now().UTC(), id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrClientNotFound)
	}
	return client, nil
}
