package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

// Create inserts one award row. A uniqueness violation on
// (user, exercise type, milestone) is translated to models.ErrConflict so
// the engine can treat a lost race as "already awarded".
func (repo *AchievementRepository) Create(achievement *models.Achievement) error {
	if err := repo.database.Create(achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: achievement %s/%d already awarded",
				models.ErrConflict, achievement.ExerciseType, achievement.Milestone)
		}
		return err
	}
	return nil
}

func (repo *AchievementRepository) ListByUser(userID uint) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (repo *AchievementRepository) ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("user_id = ? AND exercise_type = ?", userID, exerciseType).
		Order("milestone ASC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (repo *AchievementRepository) ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("user_id = ? AND exercise_type = ? AND created_at >= ? AND created_at <= ?", userID, exerciseType, start, end).
		Order("created_at ASC, id ASC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
