package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/padraicbc/pokedex/db"
	"github.com/padraicbc/pokedex/models"
)

// testCost keeps bcrypt cheap in tests.
const testCost = 4

// newTestStore opens a per-test in-memory sqlite database with the real
// schema, so unique constraints and the delete cascade behave like the
// production tables.
func newTestStore(t *testing.T) *UserStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bdb := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = bdb.Close() })

	ctx := context.Background()
	_, err = bdb.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, db.CreateTables(ctx, bdb))

	return New(bdb, testCost)
}

func registerTestUser(t *testing.T, s *UserStore, username string) *models.User {
	t.Helper()

	user, err := s.Register(context.Background(), &models.User{
		Username:  username,
		FirstName: "Ash",
		LastName:  "Ketchum",
		Email:     username + "@pallet.town",
	}, "pikachu1")
	require.NoError(t, err)
	return user
}
