package models

import "time"

// WorkoutSchedule is a recurring weekly slot the user plans to exercise in.
// DayOfWeek follows time.Weekday numbering (0 = Sunday).
type WorkoutSchedule struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"index;not null"`
	ExerciseType ExerciseType `json:"exercise_type" gorm:"type:text;not null"`
	DayOfWeek    int          `json:"day_of_week" gorm:"not null"`
	TimeOfDay    string       `json:"time_of_day" gorm:"not null"`
	Note         string       `json:"note"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
}
