package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/repository"
	"github.com/farazfarwa/fashionhub/internal/utils"
)

// AuthHandler serves signup and login. There is no session or token scheme:
// the client keeps the returned user in browser storage and the API trusts
// it, exactly as the storefront always has.
type AuthHandler struct {
	Users      UserStore
	BcryptCost int
}

func NewAuthHandler(users UserStore, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, BcryptCost: bcryptCost}
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authUserView is the signup/login response shape. It carries the stored
// password field (a bcrypt hash, never the cleartext) to keep the historical
// response contract; the admin user listing strips it instead.
type authUserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newAuthUserView(u model.User) authUserView {
	return authUserView{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return badRequest(c, "name, email and password are required")
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return badRequest(c, "role must be admin or user")
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return serverError(c, err)
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	u := model.User{Name: req.Name, Email: req.Email, Password: hash, Role: role}
	if err := h.Users.Insert(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return badRequest(c, msgAccountExists)
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": newAuthUserView(u)})
}

// Login handles POST /api/login. A wrong email and a wrong password are
// deliberately indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": msgNoAccount})
		}
		return serverError(c, err)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": msgNoAccount})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": newAuthUserView(u)})
}
