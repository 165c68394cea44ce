package handler

import (
	"github.com/gofiber/fiber/v2"

	"explorar/internal/service/catalog"
)

type TestimonialHandler struct {
	catalogService catalog.Service
}

func NewTestimonialHandler(catalogService catalog.Service) *TestimonialHandler {
	return &TestimonialHandler{catalogService: catalogService}
}

func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	testimonials, err := h.catalogService.Testimonials(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(testimonials)
}
