package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vendify/vendify-api/internal/config"
	"github.com/vendify/vendify-api/internal/platform/postgres"
	"github.com/vendify/vendify-api/internal/store"
)

// application holds the core dependencies shared across the server:
// configuration, logging, the database handle and the store layer.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	clientStore  store.ClientStore
	productStore store.ProductStore
	saleStore    store.SaleStore
}

// newApplication wires the application dependencies bottom-up: database
// connection, schema migrations, then the Postgres-backed stores.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db, logger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("Failed to close database after migration error", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		clientStore:  postgres.NewPostgresClientStore(db, logger),
		productStore: postgres.NewPostgresProductStore(db, logger),
		saleStore:    postgres.NewPostgresSaleStore(db, logger),
	}, nil
}

// cleanup releases application resources. It is safe to call more than once.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
	app.db = nil
}
