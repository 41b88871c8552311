package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/pokedex/apperror"
	mw "github.com/padraicbc/pokedex/middleware"
	"github.com/padraicbc/pokedex/models"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new user and returns a token for them.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest(err.Error())
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if _, err := h.store.Register(c.Request().Context(), user, req.Password); err != nil {
		return err
	}

	token, err := mw.Issue(user.Username, h.JWTKey)
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

// Token validates credentials and returns a fresh token.
func (h *Handler) Token(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return apperror.BadRequest(err.Error())
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if err := c.Validate(&creds); err != nil {
		return err
	}

	user, err := h.store.Authenticate(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		return err
	}

	token, err := mw.Issue(user.Username, h.JWTKey)
	if err != nil {
		return apperror.Internal(err)
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
