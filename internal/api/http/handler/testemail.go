package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/fiskerit/intake_backend/internal/service/contact"
)

type TestEmailHandler struct {
	svc contact.Service
}

func NewTestEmailHandler(svc contact.Service) *TestEmailHandler {
	return &TestEmailHandler{svc: svc}
}

// Send handles POST /api/test-email, a diagnostic that exercises the SMTP
// configuration end to end. Error bodies carry only an "error" key.
func (h *TestEmailHandler) Send(c fiber.Ctx) error {
	if err := h.svc.SendTestEmail(c.Context()); err != nil {
		if errors.Is(err, contact.ErrEmailNotConfigured) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email not configured"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ok(c, fiber.Map{"success": true, "message": "Test email sent!"})
}
