package handlers

import (
	"github.com/padraicbc/pokedex/pokeapi"
	"github.com/padraicbc/pokedex/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store  *store.UserStore
	poke   *pokeapi.Client
	JWTKey []byte
}

// New creates a Handler with the given store, catalog client and JWT
// signing key.
func New(s *store.UserStore, poke *pokeapi.Client, jwtKey []byte) *Handler {
	return &Handler{store: s, poke: poke, JWTKey: jwtKey}
}
