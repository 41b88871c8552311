package store

import (
	"context"
	"fmt"

	"github.com/padraicbc/pokedex/apperror"
	"github.com/padraicbc/pokedex/models"
)

// AddFavorite records that username favorited pokemonID. Uniqueness is
// system-wide: once any user has favorited a pokemon, every later attempt
// fails with Duplicate no matter who asks. The pre-checks order the error
// messages; the unique constraint on pokemon_id settles races.
func (s *UserStore) AddFavorite(ctx context.Context, username, pokemonID string) error {
	taken, err := s.db.NewSelect().Model((*models.Favorite)(nil)).
		Where("pokemon_id = ?", pokemonID).
		Exists(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	if taken {
		return apperror.Duplicate("already favorited")
	}

	exists, err := s.db.NewSelect().Model((*models.User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	if !exists {
		return apperror.NotFound("user", username)
	}

	fav := &models.Favorite{Username: username, PokemonID: pokemonID}
	if _, err := s.db.NewInsert().Model(fav).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return apperror.Duplicate(fmt.Sprintf("already favorited: %s", pokemonID))
		}
		return apperror.Internal(err)
	}

	return nil
}
