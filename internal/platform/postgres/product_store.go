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

const productColumns = "id, nome, sku, preco, estoque, descricao, ativo, created_at, updated_at, deleted_at"

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresProductStore(db *sql.DB, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Nome, &p.Sku, &p.Preco, &p.Estoque,
		&p.Descricao, &p.Ativo, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func productListFilter(params store.ProductListParams) *queryFilter {
	f := &queryFilter{}
	f.deletion(params.Deletion)
	if params.Ativo != nil {
		f.add("ativo = $%d", *params.Ativo)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		f.add("(nome ILIKE $%d OR sku ILIKE $%d)", pattern, pattern)
	}
	if params.MinPreco != nil {
		f.add("preco >= $%d", *params.MinPreco)
	}
	if params.MaxPreco != nil {
		f.add("preco <= $%d", *params.MaxPreco)
	}
	return f
}

// List implements store.ProductStore.List
func (s *PostgresProductStore) List(ctx context.Context, params store.ProductListParams) ([]*domain.Product, int, error) {
	f := productListFilter(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM produtos" + f.where()
	if err := s.db.QueryRowContext(ctx, countQuery, f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", MapError(err))
	}

	query := "SELECT " + productColumns + " FROM produtos" + f.where() +
		orderLimitSQL(params.Order, params.Page)
	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, total, nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Product, error) {
	f := &queryFilter{}
	f.deletion(deletion)
	f.add("id = $%d", id)

	query := "SELECT " + productColumns + " FROM produtos" + f.where()
	product, err := scanProduct(s.db.QueryRowContext(ctx, query, f.args...))
	if err != nil {
		return nil, mapNotFound(err, store.ErrProductNotFound)
	}
	return product, nil
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO produtos (id, nome, sku, preco, estoque, descricao, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns
	created, err := scanProduct(s.db.QueryRowContext(ctx, query,
		product.ID, product.Nome, product.Sku, product.Preco, product.Estoque,
		product.Descricao, product.Ativo, product.CreatedAt, product.UpdatedAt))
	if err != nil {
		return nil, mapUniqueViolation(err, store.ErrSkuExists)
	}

	s.logger.DebugContext(ctx, "product created", slog.String("product_id", created.ID.String()))
	return created, nil
}

// Update implements store.ProductStore.Update
// Only non-deleted products can be updated; updated_at is always refreshed.
func (s *PostgresProductStore) Update(ctx context.Context, id uuid.UUID, patch store.ProductPatch) (*domain.Product, error) {
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
	if patch.Sku != nil {
		appendSet("sku", *patch.Sku)
	}
	if patch.Preco != nil {
		appendSet("preco", *patch.Preco)
	}
	if patch.Estoque != nil {
		appendSet("estoque", *patch.Estoque)
	}
	if patch.Descricao != nil {
		appendSet("descricao", *patch.Descricao)
	}
	if patch.Ativo != nil {
		appendSet("ativo", *patch.Ativo)
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE produtos SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns)

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, mapUniqueViolation(err, store.ErrSkuExists)
		}
		return nil, mapNotFound(err, store.ErrProductNotFound)
	}
	return product, nil
}

// SoftDelete implements store.ProductStore.SoftDelete
func (s *PostgresProductStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE produtos SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to soft delete product: %w", MapError(err))
	}
	return checkRowsAffected(result, store.ErrProductNotFound)
}

// Restore implements store.ProductStore.Restore
func (s *PostgresProductStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `UPDATE produtos SET deleted_at = NULL, updated_at = $1
		WHERE id = $2 AND deleted_at IS NOT NULL
		RETURNING ` + productColumns
	product, err := scanProduct(s.db.QueryRowContext(ctx, query, time.Now().UTC(), id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrProductNotFound)
	}
	return product, nil
}
