package models

import "time"

// Goal is a user-defined target for one cumulative metric on one exercise
// type. Its current value is always derived from the exercise history, never
// stored; only the one-way achieved flag is persisted.
type Goal struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"index;not null"`
	ExerciseType ExerciseType `json:"exercise_type" gorm:"type:text;not null"`
	Metric       string       `json:"metric" gorm:"not null"`
	TargetValue  float64      `json:"target_value" gorm:"not null"`
	Description  string       `json:"description"`
	Achieved     bool         `json:"achieved" gorm:"not null;default:false"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
}
