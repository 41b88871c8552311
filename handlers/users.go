package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/pokedex/apperror"
	"github.com/padraicbc/pokedex/models"
	"github.com/padraicbc/pokedex/store"
)

type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=5"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

// ListUsers returns all users ordered by username.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]models.User{"users": users})
}

// GetUser returns a single user. Guarded so only that user can ask.
func (h *Handler) GetUser(c echo.Context) error {
	user, err := h.store.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// UpdateUser applies a partial update to the caller's own record.
func (h *Handler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := store.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	user, err := h.store.Update(c.Request().Context(), c.Param("username"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// DeleteUser removes the caller's own record and their favorites.
func (h *Handler) DeleteUser(c echo.Context) error {
	username := c.Param("username")
	if err := h.store.Remove(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"deleted": username})
}

// AddFavorite marks a pokemon as favorited by the caller.
func (h *Handler) AddFavorite(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.AddFavorite(c.Request().Context(), c.Param("username"), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"favorited": id})
}
