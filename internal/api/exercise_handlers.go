package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/services"
)

type recordExerciseRequest struct {
	ExerciseType string         `json:"exercise_type"`
	Metrics      map[string]any `json:"metrics"`
	RecordedAt   *time.Time     `json:"recorded_at"`
}

func (handler *Handler) RecordExercise(c *fiber.Ctx) error {
	var req recordExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	exerciseType, err := models.ParseExerciseType(req.ExerciseType)
	if err != nil {
		return respondError(c, err)
	}
	metrics, err := services.CoerceMetrics(exerciseType, req.Metrics)
	if err != nil {
		return respondError(c, err)
	}

	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	exercise, awarded, err := handler.exercises.RecordExercise(currentUserID(c), exerciseType, metrics, recordedAt)
	if err != nil {
		return respondError(c, err)
	}

	response := fiber.Map{"exercise": exercise}
	if awarded != nil {
		response["new_achievement"] = awarded
		response["message"] = congratulationMessage(awarded)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if raw := c.Query("exercise_type"); raw != "" {
		exerciseType, err := models.ParseExerciseType(raw)
		if err != nil {
			return respondError(c, err)
		}
		exercises, err := handler.exercises.ListForUserByType(userID, exerciseType)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"exercises": exercises})
	}

	exercises, err := handler.exercises.ListForUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

// ExerciseCatalog lists the supported exercise types with the metric fields
// each one requires, so clients can build entry forms without hardcoding.
func (handler *Handler) ExerciseCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exercise_types": services.ExerciseCatalog()})
}
