package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/enquiry_backend/internal/api/http/handler"
)

func (r *Router) registerEnquiryRoutes(api fiber.Router, h *handler.EnquiryHandler) {
	api.Post("/enquiries", h.Submit)
}
