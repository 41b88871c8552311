package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/pokedex/apperror"
)

// errorBody mirrors the HTTP status inside the JSON body, the shape every
// error response uses.
type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorHandler returns the single translation point from errors to HTTP
// responses. Typed apperror values keep their status and message; echo's
// own errors (unmatched routes, bind failures) are mapped across; anything
// else becomes a logged 500 with a generic body.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var appErr *apperror.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
			if errors.Is(appErr, apperror.ErrInternal) {
				logger.Error("internal error", zap.Error(appErr.Err), zap.Stack("stack"))
			}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		default:
			logger.Error("unclassified error", zap.Error(err), zap.Stack("stack"))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, map[string]errorBody{
			"error": {Message: message, Status: status},
		})
	}
}
