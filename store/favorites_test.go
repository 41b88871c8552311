package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/pokedex/apperror"
)

func TestAddFavorite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	registerTestUser(t, s, "ash")

	assert.NoError(t, s.AddFavorite(ctx, "ash", "25"))
}

func TestAddFavoriteGloballyUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, s, "ash")
	registerTestUser(t, s, "misty")

	require.NoError(t, s.AddFavorite(ctx, "ash", "25"))

	// Same user again and a different user both hit the same constraint.
	assert.ErrorIs(t, s.AddFavorite(ctx, "ash", "25"), apperror.ErrDuplicate)
	assert.ErrorIs(t, s.AddFavorite(ctx, "misty", "25"), apperror.ErrDuplicate)

	// A different pokemon is still fine.
	assert.NoError(t, s.AddFavorite(ctx, "misty", "120"))
}

func TestAddFavoriteMissingUser(t *testing.T) {
	s := newTestStore(t)

	err := s.AddFavorite(context.Background(), "nobody", "25")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
