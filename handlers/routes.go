package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/pokedex/middleware"
)

// Mount wires every route onto e. Identity extraction runs globally and
// never rejects; the guards on the /users group make the access decisions.
func (h *Handler) Mount(e *echo.Echo) {
	e.Use(mw.Authenticate(h.JWTKey))

	// Public
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/token", h.Token)

	e.GET("/pokemon", h.Pokedex)
	e.GET("/pokemon/:name", h.PokemonByName)
	e.GET("/battles", h.RandomBattle)

	// Protected
	users := e.Group("/users")
	users.GET("", h.ListUsers, mw.RequireAuth)
	users.GET("/:username", h.GetUser, mw.RequireAuth, mw.RequireSameUser)
	users.PATCH("/:username", h.UpdateUser, mw.RequireAuth, mw.RequireSameUser)
	users.DELETE("/:username", h.DeleteUser, mw.RequireAuth, mw.RequireSameUser)
	users.POST("/:username/favorites/:id", h.AddFavorite, mw.RequireAuth, mw.RequireSameUser)
}
