package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"

	"github.com/fiskerit/intake_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit handles POST /api/contact: a multipart form with first_name,
// last_name, email, phone and a mandatory resume file.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh.Filename == "" {
		return badRequest(c, "Resume file is required.")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "Resume file is required.")
	}
	defer f.Close()

	resume, err := io.ReadAll(f)
	if err != nil {
		return internalError(c, fmt.Sprintf("Failed to read resume: %v", err))
	}

	res, err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		FirstName:  c.FormValue("first_name"),
		LastName:   c.FormValue("last_name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		ResumeName: fh.Filename,
		Resume:     resume,
	})
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrMissingResume):
			return badRequest(c, "Resume file is required.")
		case errors.Is(err, contact.ErrMissingFields):
			return badRequest(c, "First name and email are required.")
		default:
			return internalError(c, fmt.Sprintf("Database error: %v", err))
		}
	}

	body := fiber.Map{
		"success":    true,
		"contact_id": res.Contact.ID,
	}
	if res.Warning != "" {
		body["warning"] = res.Warning
	} else {
		body["message"] = res.Message
	}
	return created(c, body)
}

// List handles GET /api/contacts and returns the full history newest
// first, as a bare JSON array.
func (h *ContactHandler) List(c fiber.Ctx) error {
	contacts, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c, fmt.Sprintf("Database error: %v", err))
	}
	return ok(c, contacts)
}
