package models

import (
	"fmt"
	"time"
)

// MeasurementType is the closed set of body measurement categories.
type MeasurementType string

const (
	MeasurementWeight  MeasurementType = "weight"
	MeasurementHeight  MeasurementType = "height"
	MeasurementBodyFat MeasurementType = "body_fat"
)

func AllMeasurementTypes() []MeasurementType {
	return []MeasurementType{
		MeasurementWeight,
		MeasurementHeight,
		MeasurementBodyFat,
	}
}

func ParseMeasurementType(value string) (MeasurementType, error) {
	switch MeasurementType(value) {
	case MeasurementWeight, MeasurementHeight, MeasurementBodyFat:
		return MeasurementType(value), nil
	default:
		return "", fmt.Errorf("%w: unknown measurement type %q", ErrValidation, value)
	}
}

type BodyMeasurement struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index:idx_measurement_user_type,priority:1"`
	Type      MeasurementType `json:"type" gorm:"type:text;not null;index:idx_measurement_user_type,priority:2"`
	Value     float64         `json:"value" gorm:"not null"`
	Unit      string          `json:"unit" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null;index"`
}
