// Package store persists users and favorites through bun. All methods
// return apperror values so handlers can translate failures to HTTP
// statuses without looking at driver errors.
package store

import (
	"errors"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// UserStore runs all user and favorite queries.
type UserStore struct {
	db         *bun.DB
	bcryptCost int
}

// New creates a UserStore. bcryptCost is the work factor applied whenever
// a password is hashed (registration and password updates).
func New(db *bun.DB, bcryptCost int) *UserStore {
	return &UserStore{db: db, bcryptCost: bcryptCost}
}

// isUniqueViolation reports whether err is a uniqueness constraint failure.
// Postgres reports SQLSTATE class 23 through pgdriver; the sqlite driver
// used in tests only exposes the message.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
