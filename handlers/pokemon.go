package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/pokedex/apperror"
	"github.com/padraicbc/pokedex/pokeapi"
)

// Pokedex returns one page of the upstream catalog listing. Anyone can
// look it up; ?limit overrides the default page size.
func (h *Handler) Pokedex(c echo.Context) error {
	limit := pokeapi.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return apperror.BadRequest("limit must be a positive integer")
		}
		limit = n
	}

	pokedex, err := h.poke.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]json.RawMessage{"pokedex": pokedex})
}

// PokemonByName looks a pokemon up in the upstream catalog by name.
func (h *Handler) PokemonByName(c echo.Context) error {
	pokemon, err := h.poke.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]json.RawMessage{"pokemon": pokemon})
}
