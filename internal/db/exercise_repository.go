package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) ListByUser(userID uint) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("user_id = ? AND type = ?", userID, exerciseType).
		Order("created_at ASC, id ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) ListByUserTypeWindow(userID uint, exerciseType models.ExerciseType, start time.Time, end time.Time) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("user_id = ? AND type = ? AND created_at >= ? AND created_at <= ?", userID, exerciseType, start, end).
		Order("created_at ASC, id ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}
