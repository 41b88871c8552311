package models

import "github.com/uptrace/bun"

// Favorite links a user to a pokemon from the upstream catalog.
// The unique constraint is on pokemon_id alone: a pokemon favorited by one
// user cannot be favorited by anyone else. That system-wide uniqueness is
// what the source application enforced, so it is kept rather than silently
// narrowed to per-user uniqueness.
type Favorite struct {
	bun.BaseModel `bun:"table:favorites,alias:f"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Username  string `bun:"username,notnull" json:"username"`
	PokemonID string `bun:"pokemon_id,notnull,unique" json:"pokemonID"`
}
