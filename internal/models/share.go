package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareScope names the categories of the sender's data a share exposes.
// At least one list must be non-empty. The services layer canonicalizes
// (sorts and dedupes) the lists before a share is persisted, so the JSON
// serialization doubles as the share's identity in the unique index.
type ShareScope struct {
	ExerciseTypes    []ExerciseType    `json:"exercise_types"`
	MeasurementTypes []MeasurementType `json:"body_measurement_types"`
	Achievements     []ExerciseType    `json:"achievements"`
}

func (scope ShareScope) IsEmpty() bool {
	return len(scope.ExerciseTypes) == 0 &&
		len(scope.MeasurementTypes) == 0 &&
		len(scope.Achievements) == 0
}

// Share grants the receiver a read-only, time-windowed view of the sender's
// records. Revocation is a soft delete; the partial unique index keeps one
// live grant per (sender, receiver, scope) while letting a revoked identity
// be granted again.
type Share struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	SenderID   uint       `json:"sender_id" gorm:"not null;uniqueIndex:uidx_share_identity,priority:1,where:deleted = false"`
	ReceiverID uint       `json:"receiver_id" gorm:"not null;uniqueIndex:uidx_share_identity,priority:2,where:deleted = false"`
	Scope      ShareScope `json:"scope" gorm:"type:text;serializer:json;not null;uniqueIndex:uidx_share_identity,priority:3,where:deleted = false"`
	StartDate  time.Time  `json:"start_date" gorm:"not null"`
	EndDate    time.Time  `json:"end_date" gorm:"not null"`
	Deleted    bool       `json:"-" gorm:"not null;default:false"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null"`
}

func (share *Share) BeforeCreate(tx *gorm.DB) error {
	if share.ID == uuid.Nil {
		share.ID = uuid.New()
	}
	return nil
}
