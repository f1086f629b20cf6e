package models

import "time"

// Achievement is a one-time milestone award. The composite unique index is
// the concurrency guard: two workers racing to award the same milestone
// both insert, one hits the constraint and treats it as already awarded.
type Achievement struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"not null;uniqueIndex:uidx_achievement_award,priority:1"`
	ExerciseType ExerciseType `json:"exercise_type" gorm:"type:text;not null;uniqueIndex:uidx_achievement_award,priority:2"`
	Milestone    int          `json:"milestone" gorm:"not null;uniqueIndex:uidx_achievement_award,priority:3"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null;index"`
}
