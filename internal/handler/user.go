package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// UserHandler serves the admin-facing account endpoints.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// userView never includes the password field, in contrast to the signup
// response. The asymmetry is part of the API contract.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u model.User) userView {
	return userView{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return c.JSON(http.StatusOK, views)
}

// UpdateRole handles PUT /api/users/:id.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	role := strings.TrimSpace(req.Role)
	if !model.ValidRole(role) {
		return badRequest(c, "role must be admin or user")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.UpdateRole(ctx, c.Param("id"), role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newUserView(u))
}
