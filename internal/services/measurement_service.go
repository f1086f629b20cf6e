package services

import (
	"fmt"
	"time"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/observability"
)

type MeasurementStore interface {
	Create(measurement *models.BodyMeasurement) error
	ListByUser(userID uint) ([]models.BodyMeasurement, error)
}

type MeasurementService struct {
	measurements MeasurementStore
	clock        func() time.Time
}

func NewMeasurementService(measurements MeasurementStore) *MeasurementService {
	return &MeasurementService{
		measurements: measurements,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// RecordMeasurement validates and persists one body measurement.
func (service *MeasurementService) RecordMeasurement(userID uint, measurementType models.MeasurementType, value float64, unit string, recordedAt time.Time) (models.BodyMeasurement, error) {
	if err := ValidateMeasurementUnit(measurementType, unit); err != nil {
		return models.BodyMeasurement{}, err
	}
	if value <= 0 {
		return models.BodyMeasurement{}, fmt.Errorf("%w: measurement value must be greater than 0", models.ErrValidation)
	}
	if recordedAt.IsZero() {
		recordedAt = service.clock()
	}

	measurement := models.BodyMeasurement{
		UserID:    userID,
		Type:      measurementType,
		Value:     value,
		Unit:      unit,
		CreatedAt: recordedAt,
	}
	if err := service.measurements.Create(&measurement); err != nil {
		return models.BodyMeasurement{}, fmt.Errorf("persist measurement: %w", err)
	}
	observability.RecordMeasurementLogged(string(measurementType))
	return measurement, nil
}

func (service *MeasurementService) ListForUser(userID uint) ([]models.BodyMeasurement, error) {
	return service.measurements.ListByUser(userID)
}
