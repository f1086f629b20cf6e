package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
)

// respondError maps the domain sentinels onto HTTP statuses. Anything not in
// the taxonomy is logged and reported as an opaque 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotAuthorized):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return apiError(c, fiber.StatusBadRequest, message)
}

// parseTimeParam accepts RFC 3339 timestamps and bare dates.
func parseTimeParam(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
