package services

import (
	"fmt"
	"time"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/observability"
)

type ExerciseStore interface {
	Create(exercise *models.Exercise) error
	ListByUser(userID uint) ([]models.Exercise, error)
	ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Exercise, error)
}

type AchievementEvaluator interface {
	EvaluateAfterRecord(userID uint, exerciseType models.ExerciseType) (*models.Achievement, error)
}

type ExerciseService struct {
	exercises ExerciseStore
	evaluator AchievementEvaluator
	clock     func() time.Time
}

func NewExerciseService(exercises ExerciseStore, evaluator AchievementEvaluator) *ExerciseService {
	return &ExerciseService{
		exercises: exercises,
		evaluator: evaluator,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// RecordExercise validates and persists one activity, then runs achievement
// evaluation against the updated history. Validation failures abort before
// any write. The returned achievement is the newly awarded milestone, if the
// record pushed the cumulative total across one.
func (service *ExerciseService) RecordExercise(userID uint, exerciseType models.ExerciseType, metrics models.Metrics, recordedAt time.Time) (models.Exercise, *models.Achievement, error) {
	if err := ValidateExerciseMetrics(exerciseType, metrics); err != nil {
		return models.Exercise{}, nil, err
	}
	if recordedAt.IsZero() {
		recordedAt = service.clock()
	}

	exercise := models.Exercise{
		UserID:    userID,
		Type:      exerciseType,
		Metrics:   metrics,
		CreatedAt: recordedAt,
	}
	if err := service.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, nil, fmt.Errorf("persist exercise: %w", err)
	}
	observability.RecordExerciseLogged(string(exerciseType))

	// Awarding runs after the record is committed; it is guarded by the
	// achievement uniqueness constraint rather than a shared transaction.
	achievement, err := service.evaluator.EvaluateAfterRecord(userID, exerciseType)
	if err != nil {
		return exercise, nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	return exercise, achievement, nil
}

func (service *ExerciseService) ListForUser(userID uint) ([]models.Exercise, error) {
	return service.exercises.ListByUser(userID)
}

func (service *ExerciseService) ListForUserByType(userID uint, exerciseType models.ExerciseType) ([]models.Exercise, error) {
	return service.exercises.ListByUserAndType(userID, exerciseType)
}
