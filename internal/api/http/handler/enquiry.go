package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	pkgerrors "github.com/pkg/errors"

	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/internal/service/enquiry"
)

type EnquiryHandler struct {
	svc enquiry.Service
}

func NewEnquiryHandler(svc enquiry.Service) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

type submitEnquiryRequest struct {
	Name     string `json:"name" form:"name"`
	Lastname string `json:"lastname" form:"lastname"`
	Email    string `json:"email" form:"email"`
	Subject  string `json:"subject" form:"subject"`
	Notes    string `json:"notes" form:"notes"`
}

type enquiryData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

func (h *EnquiryHandler) Submit(c fiber.Ctx) error {
	// an empty body is an empty submission and fails the presence check
	var req submitEnquiryRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	e, err := h.svc.Submit(c.Context(), enquiry.SubmitRequest{
		Name:     req.Name,
		Lastname: req.Lastname,
		Email:    req.Email,
		Subject:  req.Subject,
		Notes:    req.Notes,
	})
	if err != nil {
		var verr *repo.ValidationError
		switch {
		case errors.Is(err, enquiry.ErrFieldsRequired):
			return badRequest(c, "All fields are required")
		case errors.Is(err, enquiry.ErrInvalidEmail):
			return badRequest(c, "Please provide a valid email address")
		case errors.As(err, &verr):
			return validationFailed(c, verr.Messages())
		case errors.Is(err, repo.ErrDuplicate):
			return badRequest(c, "Duplicate entry detected")
		}
		return pkgerrors.WithStack(err)
	}

	return ok(c, "Enquiry submitted successfully", enquiryData{
		ID:       e.ID,
		Name:     e.Name,
		Lastname: e.Lastname,
		Email:    e.Email,
	})
}
