package db

import (
	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) FindByIDForUser(goalID uint, userID uint) (models.Goal, bool, error) {
	var goal models.Goal
	result := repo.database.Where("id = ? AND user_id = ?", goalID, userID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	return goal, result.RowsAffected > 0, nil
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) Save(goal *models.Goal) error {
	return repo.database.Save(goal).Error
}

// MarkAchieved flips the one-way achieved flag. It is a targeted update so
// concurrent progress reads never clobber other goal fields.
func (repo *GoalRepository) MarkAchieved(goalID uint) error {
	return repo.database.Model(&models.Goal{}).Where("id = ?", goalID).Update("achieved", true).Error
}

func (repo *GoalRepository) Delete(goalID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
