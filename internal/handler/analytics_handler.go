package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"explorar/internal/middleware"
	"explorar/internal/service/analytics"
)

type AnalyticsHandler struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

type ingestRequest struct {
	Events         []json.RawMessage `json:"events"`
	BatchTimestamp string            `json:"batchTimestamp"`
}

func (h *AnalyticsHandler) Ingest(c *fiber.Ctx) error {
	var req ingestRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(req.Events) == 0 {
		return middleware.BadRequest("No events provided")
	}

	inserted, err := h.analyticsService.Ingest(c.Context(), req.Events, req.BatchTimestamp)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"insertedCount": inserted,
		"message":       fmt.Sprintf("%d eventos registrados", inserted),
	})
}

func (h *AnalyticsHandler) UserMetrics(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return middleware.BadRequest("Invalid user ID")
	}

	counts, err := h.analyticsService.UserMetrics(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"userId": userID,
		"events": counts,
	})
}
