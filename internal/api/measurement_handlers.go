package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/services"
)

type recordMeasurementRequest struct {
	MeasurementType string     `json:"measurement_type"`
	Value           float64    `json:"value"`
	Unit            string     `json:"unit"`
	RecordedAt      *time.Time `json:"recorded_at"`
}

func (handler *Handler) RecordMeasurement(c *fiber.Ctx) error {
	var req recordMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	measurementType, err := models.ParseMeasurementType(req.MeasurementType)
	if err != nil {
		return respondError(c, err)
	}

	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	measurement, err := handler.measurements.RecordMeasurement(currentUserID(c), measurementType, req.Value, req.Unit, recordedAt)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"measurement": measurement})
}

func (handler *Handler) ListMeasurements(c *fiber.Ctx) error {
	measurements, err := handler.measurements.ListForUser(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"measurements": measurements})
}

func (handler *Handler) MeasurementCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"measurement_types": services.MeasurementCatalog()})
}
