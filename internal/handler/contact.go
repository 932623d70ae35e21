package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/farazfarwa/fashionhub/internal/model"
)

// ContactHandler serves the write-only contact inbox.
type ContactHandler struct {
	Messages ContactStore
}

func NewContactHandler(messages ContactStore) *ContactHandler {
	return &ContactHandler{Messages: messages}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c echo.Context) error {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" ||
		strings.TrimSpace(payload.Subject) == "" || strings.TrimSpace(payload.Message) == "" {
		return badRequest(c, "name, email, subject and message are required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	m := model.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}
	if err := h.Messages.Insert(ctx, &m); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent successfully"})
}
