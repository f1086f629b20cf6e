package models

import (
	"fmt"
	"time"
)

// ExerciseType is the closed set of activity categories. Every lookup table
// in the services layer is keyed by it; unknown values never survive parsing.
type ExerciseType string

const (
	ExerciseCycling       ExerciseType = "cycling"
	ExerciseRunning       ExerciseType = "running"
	ExerciseSwimming      ExerciseType = "swimming"
	ExerciseWeightlifting ExerciseType = "weight_lifting"
	ExerciseYoga          ExerciseType = "yoga"
)

func AllExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ExerciseCycling,
		ExerciseRunning,
		ExerciseSwimming,
		ExerciseWeightlifting,
		ExerciseYoga,
	}
}

func ParseExerciseType(value string) (ExerciseType, error) {
	switch ExerciseType(value) {
	case ExerciseCycling, ExerciseRunning, ExerciseSwimming, ExerciseWeightlifting, ExerciseYoga:
		return ExerciseType(value), nil
	default:
		return "", fmt.Errorf("%w: unknown exercise type %q", ErrValidation, value)
	}
}

// Metrics holds the numeric fields of one logged activity. Keys beyond the
// required ones for the exercise type are stored as given.
type Metrics map[string]float64

type Exercise struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    uint         `json:"user_id" gorm:"not null;index:idx_exercise_user_type,priority:1"`
	Type      ExerciseType `json:"type" gorm:"type:text;not null;index:idx_exercise_user_type,priority:2"`
	Metrics   Metrics      `json:"metrics" gorm:"type:text;serializer:json;not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;index"`
}
