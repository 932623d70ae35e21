package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Client-visible messages. Anything unexpected collapses into msgServerError
// so no internal detail ever reaches the caller.
const (
	msgServerError   = "Server error"
	msgAccountExists = "Account already exists"
	msgNoAccount     = "Account not found. Please sign up first."
)

// opCtx bounds a data operation with the uniform per-call timeout.
func opCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// serverError logs the cause and returns the generic 500 body.
func serverError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": msgServerError})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": msg})
}
