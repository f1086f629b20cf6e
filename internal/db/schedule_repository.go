package db

import (
	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

func (repo *ScheduleRepository) Create(schedule *models.WorkoutSchedule) error {
	return repo.database.Create(schedule).Error
}

func (repo *ScheduleRepository) FindByIDForUser(scheduleID uint, userID uint) (models.WorkoutSchedule, bool, error) {
	var schedule models.WorkoutSchedule
	result := repo.database.Where("id = ? AND user_id = ?", scheduleID, userID).Limit(1).Find(&schedule)
	if result.Error != nil {
		return models.WorkoutSchedule{}, false, result.Error
	}
	return schedule, result.RowsAffected > 0, nil
}

func (repo *ScheduleRepository) ListByUser(userID uint) ([]models.WorkoutSchedule, error) {
	schedules := make([]models.WorkoutSchedule, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day_of_week ASC, time_of_day ASC, id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *ScheduleRepository) ListByDayOfWeek(dayOfWeek int) ([]models.WorkoutSchedule, error) {
	schedules := make([]models.WorkoutSchedule, 0)
	if err := repo.database.
		Where("day_of_week = ?", dayOfWeek).
		Order("time_of_day ASC, id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *ScheduleRepository) Save(schedule *models.WorkoutSchedule) error {
	return repo.database.Save(schedule).Error
}

func (repo *ScheduleRepository) Delete(scheduleID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", scheduleID, userID).Delete(&models.WorkoutSchedule{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
