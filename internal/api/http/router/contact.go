package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fiskerit/intake_backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, te *handler.TestEmailHandler) {
	api.Post("/contact", h.Submit)
	api.Get("/contacts", h.List)
	api.Post("/test-email", te.Send)
}
