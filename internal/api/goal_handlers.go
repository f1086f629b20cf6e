package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/services"
)

type goalRequest struct {
	ExerciseType string  `json:"exercise_type"`
	Metric       string  `json:"metric"`
	TargetValue  float64 `json:"target_value"`
	Description  string  `json:"description"`
}

func (req goalRequest) toInput() (services.GoalInput, error) {
	exerciseType, err := models.ParseExerciseType(req.ExerciseType)
	if err != nil {
		return services.GoalInput{}, err
	}
	return services.GoalInput{
		ExerciseType: exerciseType,
		Metric:       req.Metric,
		TargetValue:  req.TargetValue,
		Description:  req.Description,
	}, nil
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}

	goal, err := handler.goals.CreateGoal(currentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": goal})
}

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	goals, err := handler.goals.ListWithProgress(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"goals": goals})
}

func (handler *Handler) GetGoalProgress(c *fiber.Ctx) error {
	goalID, err := c.ParamsInt("id")
	if err != nil || goalID <= 0 {
		return badRequest(c, "invalid goal id")
	}

	progress, err := handler.goals.ProgressByID(currentUserID(c), uint(goalID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(progress)
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	goalID, err := c.ParamsInt("id")
	if err != nil || goalID <= 0 {
		return badRequest(c, "invalid goal id")
	}

	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	input, err := req.toInput()
	if err != nil {
		return respondError(c, err)
	}

	goal, err := handler.goals.UpdateGoal(currentUserID(c), uint(goalID), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"goal": goal})
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	goalID, err := c.ParamsInt("id")
	if err != nil || goalID <= 0 {
		return badRequest(c, "invalid goal id")
	}

	if err := handler.goals.DeleteGoal(currentUserID(c), uint(goalID)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
