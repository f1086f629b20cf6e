package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/services"
)

type scheduleRequest struct {
	ExerciseType string `json:"exercise_type"`
	DayOfWeek    int    `json:"day_of_week"`
	TimeOfDay    string `json:"time_of_day"`
	Note         string `json:"note"`
}

func (req scheduleRequest) toInput() (services.ScheduleInput, error) {
	exerciseType, err := models.ParseExerciseType(req.ExerciseType)
	if err != nil {
		return services.ScheduleInput{}, err
	}
	return services.ScheduleInput{
		ExerciseType: exerciseType,
		DayOfWeek:    req.DayOfWeek,
		TimeOfDay:    req.TimeOfDay,
		Note:         req.Note,
	}, nil
}

func (handler *Handler) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}

	schedule, err := handler.schedules.CreateSchedule(currentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"schedule": schedule})
}

func (handler *Handler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := handler.schedules.ListForUser(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}

func (handler *Handler) UpdateSchedule(c *fiber.Ctx) error {
	scheduleID, err := c.ParamsInt("id")
	if err != nil || scheduleID <= 0 {
		return badRequest(c, "invalid schedule id")
	}

	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}

	schedule, err := handler.schedules.UpdateSchedule(currentUserID(c), uint(scheduleID), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"schedule": schedule})
}

func (handler *Handler) DeleteSchedule(c *fiber.Ctx) error {
	scheduleID, err := c.ParamsInt("id")
	if err != nil || scheduleID <= 0 {
		return badRequest(c, "invalid schedule id")
	}

	if err := handler.schedules.DeleteSchedule(currentUserID(c), uint(scheduleID)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
