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

const saleColumns = "id, cliente_id, produto_id, quantidade, preco_unit, total, status, created_at, updated_at, deleted_at"

// PostgresSaleStore implements the store.SaleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSaleStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresSaleStore creates a new PostgreSQL implementation of the
// SaleStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresSaleStore(db *sql.DB, logger *slog.Logger) *PostgresSaleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSaleStore{
		db:     db,
		logger: logger.With(slog.String("component", "sale_store")),
	}
}

// Ensure PostgresSaleStore implements store.SaleStore interface
var _ store.SaleStore = (*PostgresSaleStore)(nil)

func scanSale(row interface{ Scan(...any) error }) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(&s.ID, &s.ClienteID, &s.ProdutoID, &s.Quantidade,
		&s.PrecoUnit, &s.Total, &s.Status, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func saleListFilter(params store.SaleListParams) *queryFilter {
	f := &queryFilter{}
	f.deletion(params.Deletion)
	if params.Status != nil {
		f.add("status = $%d", string(*params.Status))
	}
	if params.ClienteID != nil {
		f.add("cliente_id = $%d", *params.ClienteID)
	}
	if params.ProdutoID != nil {
		f.add("produto_id = $%d", *params.ProdutoID)
	}
	if params.DateFrom != nil {
		f.add("created_at >= $%d", *params.DateFrom)
	}
	if params.DateTo != nil {
		f.add("created_at <= $%d", *params.DateTo)
	}
	return f
}

// List implements store.SaleStore.List
func (s *PostgresSaleStore) List(ctx context.Context, params store.SaleListParams) ([]*domain.Sale, int, error) {
	f := saleListFilter(params)

	var total int
	countQuery := "SELECT COUNT(*) FROM vendas" + f.where()
	if err := s.db.QueryRowContext(ctx, countQuery, f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", MapError(err))
	}

	query := "SELECT " + saleColumns + " FROM vendas" + f.where() +
		orderLimitSQL(params.Order, params.Page)
	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sale rows: %w", err)
	}

	return sales, total, nil
}

// GetByID implements store.SaleStore.GetByID
func (s *PostgresSaleStore) GetByID(ctx context.Context, id uuid.UUID, deletion store.DeletionFilter) (*domain.Sale, error) {
	f := &queryFilter{}
	f.deletion(deletion)
	f.add("id = $%d", id)

	query := "SELECT " + saleColumns + " FROM vendas" + f.where()
	sale, err := scanSale(s.db.QueryRowContext(ctx, query, f.args...))
	if err != nil {
		return nil, mapNotFound(err, store.ErrSaleNotFound)
	}
	return sale, nil
}

// Create implements store.SaleStore.Create
// The total column is generated by the database from quantidade and
// preco_unit, so it is not part of the insert list.
func (s *PostgresSaleStore) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	if err := sale.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO vendas (id, cliente_id, produto_id, quantidade, preco_unit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + saleColumns
	created, err := scanSale(s.db.QueryRowContext(ctx, query,
		sale.ID, sale.ClienteID, sale.ProdutoID, sale.Quantidade,
		sale.PrecoUnit, string(sale.Status), sale.CreatedAt, sale.UpdatedAt))
	if err != nil {
		return nil, MapError(err)
	}

	s.logger.DebugContext(ctx, "sale created", slog.String("sale_id", created.ID.String()))
	return created, nil
}

// Update implements store.SaleStore.Update
// Only non-deleted sales can be updated; updated_at is always refreshed.
func (s *PostgresSaleStore) Update(ctx context.Context, id uuid.UUID, patch store.SalePatch) (*domain.Sale, error) {
	if patch.IsEmpty() {
		return nil, store.ErrEmptyPatch
	}

	set := []string{}
	args := []any{}
	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.ClienteID != nil {
		appendSet("cliente_id", *patch.ClienteID)
	}
	if patch.ProdutoID != nil {
		appendSet("produto_id", *patch.ProdutoID)
	}
	if patch.Quantidade != nil {
		appendSet("quantidade", *patch.Quantidade)
	}
	if patch.PrecoUnit != nil {
		appendSet("preco_unit", *patch.PrecoUnit)
	}
	if patch.Status != nil {
		appendSet("status", string(*patch.Status))
	}
	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE vendas SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s",
		strings.Join(set, ", "), len(args), saleColumns)

	sale, err := scanSale(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapNotFound(err, store.ErrSaleNotFound)
	}
	return sale, nil
}

// SoftDelete implements store.SaleStore.SoftDelete
func (s *PostgresSaleStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE vendas SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to soft delete sale: %w", MapError(err))
	}
	return checkRowsAffected(result, store.ErrSaleNotFound)
}

// Restore implements store.SaleStore.Restore
func (s *PostgresSaleStore) Restore(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	query := `UPDATE vendas SET deleted_at = NULL, updated_at = $1
		WHERE id = $2 AND deleted_at IS NOT NULL
		RETURNING ` + saleColumns
	sale, err := scanSale(s.db.QueryRowContext(ctx, query, time.Now().UTC(), id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrSaleNotFound)
	}
	return sale, nil
}
