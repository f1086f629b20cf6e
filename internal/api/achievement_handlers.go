package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/services"
)

func (handler *Handler) ListAchievements(c *fiber.Ctx) error {
	if c.Query("grouped") == "true" {
		grouped, err := handler.achievements.ListForUserByType(currentUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"achievements": grouped})
	}

	achievements, err := handler.achievements.ListForUser(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"achievements": achievements})
}

// AchievementCatalog lists the milestone ladder per exercise type.
func (handler *Handler) AchievementCatalog(c *fiber.Ctx) error {
	catalog := make(map[models.ExerciseType][]int, len(models.AllExerciseTypes()))
	for _, exerciseType := range models.AllExerciseTypes() {
		catalog[exerciseType] = services.MilestonesFor(exerciseType)
	}
	return c.JSON(fiber.Map{"milestones": catalog})
}

func congratulationMessage(achievement *models.Achievement) string {
	return fmt.Sprintf("Congratulations! You reached the %d milestone for %s.",
		achievement.Milestone, achievement.ExerciseType)
}
