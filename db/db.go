package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/pokedex/config"
	"github.com/padraicbc/pokedex/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order. Uniqueness of
// usernames and pokemon ids lives here as real constraints: the store's
// pre-checks only choose error messages, the database is what actually
// prevents duplicate rows under concurrent requests.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*models.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// Deleting a user takes their favorites with them, otherwise the
	// global pokemon_id uniqueness would block those ids forever.
	if _, err := db.NewCreateTable().
		Model((*models.Favorite)(nil)).
		IfNotExists().
		ForeignKey(`("username") REFERENCES "users" ("username") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("creating favorites table: %w", err)
	}

	return nil
}
