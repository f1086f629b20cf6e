package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitledger/fitledger/internal/models"
	"github.com/fitledger/fitledger/internal/observability"
)

// milestoneThresholds holds the ordered award thresholds per exercise type,
// in the primary metric's unit: meters for the distance sports, cumulative
// kg volume (weight x sets x reps) for weightlifting, minutes for yoga.
var milestoneThresholds = map[models.ExerciseType][]int{
	models.ExerciseCycling:       {50000, 100000, 200000},
	models.ExerciseRunning:       {10000, 50000, 100000},
	models.ExerciseSwimming:      {10000, 50000, 100000},
	models.ExerciseWeightlifting: {5000, 25000, 100000},
	models.ExerciseYoga:          {100, 500, 1000},
}

// MilestonesFor returns the ordered milestone thresholds for an exercise
// type. The result is a copy; the table itself never changes.
func MilestonesFor(exerciseType models.ExerciseType) []int {
	thresholds := milestoneThresholds[exerciseType]
	out := make([]int, len(thresholds))
	copy(out, thresholds)
	return out
}

// PrimaryMetricValue extracts the contribution of one exercise to its type's
// cumulative total.
func PrimaryMetricValue(exercise models.Exercise) float64 {
	switch exercise.Type {
	case models.ExerciseCycling, models.ExerciseRunning, models.ExerciseSwimming:
		return exercise.Metrics["distance"]
	case models.ExerciseWeightlifting:
		return exercise.Metrics["weight"] * exercise.Metrics["sets"] * exercise.Metrics["reps"]
	case models.ExerciseYoga:
		return exercise.Metrics["duration"]
	default:
		return 0
	}
}

// CumulativePrimaryTotal sums the primary metric across a user's exercises
// of one type.
func CumulativePrimaryTotal(exercises []models.Exercise) float64 {
	var total float64
	for _, exercise := range exercises {
		total += PrimaryMetricValue(exercise)
	}
	return total
}

type AchievementStore interface {
	Create(achievement *models.Achievement) error
	ListByUser(userID uint) ([]models.Achievement, error)
	ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Achievement, error)
}

type AchievementExerciseReader interface {
	ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Exercise, error)
}

type AchievementService struct {
	achievements AchievementStore
	exercises    AchievementExerciseReader
	clock        func() time.Time
}

func NewAchievementService(achievements AchievementStore, exercises AchievementExerciseReader) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		exercises:    exercises,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// EvaluateAfterRecord recomputes the user's cumulative total for the type
// and awards every reached-but-unawarded milestone. The insert races with
// concurrent evaluations on purpose: the unique constraint decides the
// winner and a lost race means the milestone is already awarded. Returns the
// highest newly awarded achievement, or nil when nothing new was reached.
func (service *AchievementService) EvaluateAfterRecord(userID uint, exerciseType models.ExerciseType) (*models.Achievement, error) {
	exercises, err := service.exercises.ListByUserAndType(userID, exerciseType)
	if err != nil {
		return nil, fmt.Errorf("load exercises for achievement evaluation: %w", err)
	}
	total := CumulativePrimaryTotal(exercises)

	existing, err := service.achievements.ListByUserAndType(userID, exerciseType)
	if err != nil {
		return nil, fmt.Errorf("load existing achievements: %w", err)
	}
	awarded := make(map[int]struct{}, len(existing))
	for _, achievement := range existing {
		awarded[achievement.Milestone] = struct{}{}
	}

	var newest *models.Achievement
	for _, threshold := range milestoneThresholds[exerciseType] {
		if float64(threshold) > total {
			break
		}
		if _, already := awarded[threshold]; already {
			continue
		}

		achievement := models.Achievement{
			UserID:       userID,
			ExerciseType: exerciseType,
			Milestone:    threshold,
			CreatedAt:    service.clock(),
		}
		if err := service.achievements.Create(&achievement); err != nil {
			if errors.Is(err, models.ErrConflict) {
				// A concurrent evaluation won the insert.
				continue
			}
			return nil, fmt.Errorf("award achievement: %w", err)
		}
		observability.RecordAchievementAwarded(string(exerciseType))
		newest = &achievement
	}
	return newest, nil
}

func (service *AchievementService) ListForUser(userID uint) ([]models.Achievement, error) {
	return service.achievements.ListByUser(userID)
}

// ListForUserByType groups a user's achievements per exercise type for the
// dashboard-style listing.
func (service *AchievementService) ListForUserByType(userID uint) (map[models.ExerciseType][]models.Achievement, error) {
	achievements, err := service.achievements.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[models.ExerciseType][]models.Achievement)
	for _, achievement := range achievements {
		grouped[achievement.ExerciseType] = append(grouped[achievement.ExerciseType], achievement)
	}
	return grouped, nil
}
