package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/padraicbc/pokedex/apperror"
	"github.com/padraicbc/pokedex/models"
)

// UserPatch carries the fields of a partial update. Nil means "leave as
// is"; only non-nil fields reach the database.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func (p UserPatch) empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Password == nil
}

// Authenticate checks username/password and returns the profile with the
// hash stripped. A missing user and a wrong password both come back as
// Unauthorized so responses don't reveal which usernames exist.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Unauthorized("invalid username/password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("invalid username/password")
	}

	user.Password = ""
	return user, nil
}

// Register hashes the password and inserts the user. The existence check
// picks the friendlier error; the primary key is what actually stops two
// concurrent registrations of the same username.
func (s *UserStore) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	exists, err := s.db.NewSelect().Model((*models.User)(nil)).
		Where("username = ?", user.Username).
		Exists(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Duplicate(fmt.Sprintf("duplicate username: %s", user.Username))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Password = string(hash)

	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Duplicate(fmt.Sprintf("duplicate username: %s", user.Username))
		}
		return nil, apperror.Internal(err)
	}

	user.Password = ""
	return user, nil
}

// Get returns a single profile without the hash.
func (s *UserStore) Get(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, apperror.Internal(err)
	}

	user.Password = ""
	return user, nil
}

// List returns all profiles ordered by username, hashes stripped.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.NewSelect().Model(&users).
		OrderExpr("username ASC").
		Scan(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Update applies a partial update and returns the new profile. A patch
// with no fields is BadRequest; a supplied password is re-hashed before
// it is stored.
func (s *UserStore) Update(ctx context.Context, username string, patch UserPatch) (*models.User, error) {
	if patch.empty() {
		return nil, apperror.BadRequest("no data")
	}

	q := s.db.NewUpdate().Model((*models.User)(nil)).
		Where("username = ?", username)

	if patch.FirstName != nil {
		q = q.Set("first_name = ?", *patch.FirstName)
	}
	if patch.LastName != nil {
		q = q.Set("last_name = ?", *patch.LastName)
	}
	if patch.Email != nil {
		q = q.Set("email = ?", *patch.Email)
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		q = q.Set("password = ?", string(hash))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if n == 0 {
		return nil, apperror.NotFound("user", username)
	}

	return s.Get(ctx, username)
}

// Remove deletes the user; favorites go with them via the cascade.
func (s *UserStore) Remove(ctx context.Context, username string) error {
	res, err := s.db.NewDelete().Model((*models.User)(nil)).
		Where("username = ?", username).
		Exec(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.Internal(err)
	}
	if n == 0 {
		return apperror.NotFound("user", username)
	}
	return nil
}
