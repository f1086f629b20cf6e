package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitledger/fitledger/internal/models"
)

type MeasurementRepository struct {
	database *gorm.DB
}

func NewMeasurementRepository(database *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{database: database}
}

func (repo *MeasurementRepository) Create(measurement *models.BodyMeasurement) error {
	return repo.database.Create(measurement).Error
}

func (repo *MeasurementRepository) ListByUser(userID uint) ([]models.BodyMeasurement, error) {
	measurements := make([]models.BodyMeasurement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (repo *MeasurementRepository) ListByUserTypeWindow(userID uint, measurementType models.MeasurementType, start time.Time, end time.Time) ([]models.BodyMeasurement, error) {
	measurements := make([]models.BodyMeasurement, 0)
	if err := repo.database.
		Where("user_id = ? AND type = ? AND created_at >= ? AND created_at <= ?", userID, measurementType, start, end).
		Order("created_at ASC, id ASC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}
