package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"explorar/internal/middleware"
	"explorar/internal/service/catalog"
)

type CareerHandler struct {
	catalogService catalog.Service
}

func NewCareerHandler(catalogService catalog.Service) *CareerHandler {
	return &CareerHandler{catalogService: catalogService}
}

func (h *CareerHandler) List(c *fiber.Ctx) error {
	careers, err := h.catalogService.Careers(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(careers)
}

func (h *CareerHandler) Delete(c *fiber.Ctx) error {
	careerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid career ID")
	}

	deleted, err := h.catalogService.DeleteCareer(c.Context(), careerID)
	if err != nil {
		return err
	}
	if !deleted {
		return middleware.NotFound("Career not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Carrera eliminada correctamente",
	})
}
