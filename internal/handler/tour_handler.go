package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"explorar/internal/middleware"
	"explorar/internal/service/catalog"
)

type TourHandler struct {
	catalogService catalog.Service
}

func NewTourHandler(catalogService catalog.Service) *TourHandler {
	return &TourHandler{catalogService: catalogService}
}

func (h *TourHandler) List(c *fiber.Ctx) error {
	tours, err := h.catalogService.Tours(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tours)
}

func (h *TourHandler) Get(c *fiber.Ctx) error {
	tourID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid tour ID")
	}

	tour, err := h.catalogService.TourByID(c.Context(), tourID)
	if err != nil {
		return err
	}
	if tour == nil {
		return middleware.NotFound("Tour not found")
	}

	return c.Status(fiber.StatusOK).JSON(tour)
}

// GetModel redirects the AR viewer to the tour's 3D model. The URL is
// short lived, so the app requests it again on every tour start.
func (h *TourHandler) GetModel(c *fiber.Ctx) error {
	tourID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid tour ID")
	}

	modelURL, found, err := h.catalogService.TourModelURL(c.Context(), tourID)
	if err != nil {
		return err
	}
	if !found {
		return middleware.NotFound("Tour not found")
	}

	return c.Redirect(modelURL, fiber.StatusFound)
}
