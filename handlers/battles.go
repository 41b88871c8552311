package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RandomBattle returns a randomly chosen opponent from the upstream
// catalog.
func (h *Handler) RandomBattle(c echo.Context) error {
	opponent, err := h.poke.Random(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]json.RawMessage{"response": opponent})
}
