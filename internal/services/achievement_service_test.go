package services

import (
	"fmt"
	"testing"

	"github.com/fitledger/fitledger/internal/models"
)

type stubAchievementStore struct {
	achievements []models.Achievement
	nextID       uint
	failNext     error
}

func (store *stubAchievementStore) Create(achievement *models.Achievement) error {
	if store.failNext != nil {
		err := store.failNext
		store.failNext = nil
		return err
	}
	for _, existing := range store.achievements {
		if existing.UserID == achievement.UserID &&
			existing.ExerciseType == achievement.ExerciseType &&
			existing.Milestone == achievement.Milestone {
			return fmt.Errorf("%w: achievement %s/%d already awarded",
				models.ErrConflict, achievement.ExerciseType, achievement.Milestone)
		}
	}
	store.nextID++
	achievement.ID = store.nextID
	store.achievements = append(store.achievements, *achievement)
	return nil
}

func (store *stubAchievementStore) ListByUser(userID uint) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, achievement := range store.achievements {
		if achievement.UserID == userID {
			out = append(out, achievement)
		}
	}
	return out, nil
}

func (store *stubAchievementStore) ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, achievement := range store.achievements {
		if achievement.UserID == userID && achievement.ExerciseType == exerciseType {
			out = append(out, achievement)
		}
	}
	return out, nil
}

func runningRecord(userID uint, distance float64) models.Exercise {
	return models.Exercise{UserID: userID, Type: models.ExerciseRunning, Metrics: models.Metrics{"distance": distance, "duration": distance / 200}}
}

func TestEvaluateAwardsFirstMilestoneOnCrossing(t *testing.T) {
	store := &stubAchievementStore{}
	reader := &stubExerciseReader{exercises: []models.Exercise{
		runningRecord(1, 6000),
		runningRecord(1, 5000),
	}}
	service := NewAchievementService(store, reader)

	awarded, err := service.EvaluateAfterRecord(1, models.ExerciseRunning)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if awarded == nil || awarded.Milestone != 10000 {
		t.Fatalf("expected the 10000 milestone, got %+v", awarded)
	}
}

func TestEvaluateBelowThresholdAwardsNothing(t *testing.T) {
	store := &stubAchievementStore{}
	reader := &stubExerciseReader{exercises: []models.Exercise{runningRecord(1, 9999)}}
	service := NewAchievementService(store, reader)

	awarded, err := service.EvaluateAfterRecord(1, models.ExerciseRunning)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if awarded != nil {
		t.Fatalf("9999m must not award the 10000 milestone, got %+v", awarded)
	}
}

func TestEvaluateIsIdempotentAcrossRecords(t *testing.T) {
	store := &stubAchievementStore{}
	reader := &stubExerciseReader{exercises: []models.Exercise{runningRecord(1, 12000)}}
	service := NewAchievementService(store, reader)

	if _, err := service.EvaluateAfterRecord(1, models.ExerciseRunning); err != nil {
		t.Fatalf("first evaluate failed: %v", err)
	}

	reader.exercises = append(reader.exercises, runningRecord(1, 3000))
	awarded, err := service.EvaluateAfterRecord(1, models.ExerciseRunning)
	if err != nil {
		t.Fatalf("second evaluate failed: %v", err)
	}
	if awarded != nil {
		t.Fatalf("already-awarded milestone must not be re-awarded, got %+v", awarded)
	}
	if len(store.achievements) != 1 {
		t.Fatalf("expected exactly one stored achievement, got %d", len(store.achievements))
	}
}

func TestEvaluateAwardsEveryMilestoneCrossedAtOnce(t *testing.T) {
	store := &stubAchievementStore{}
	reader := &stubExerciseReader{exercises: []models.Exercise{runningRecord(1, 60000)}}
	service := NewAchievementService(store, reader)

	awarded, err := service.EvaluateAfterRecord(1, models.ExerciseRunning)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if awarded == nil || awarded.Milestone != 50000 {
		t.Fatalf("highest new milestone should be 50000, got %+v", awarded)
	}
	if len(store.achievements) != 2 {
		t.Fatalf("a single record crossing two thresholds awards both, got %d", len(store.achievements))
	}
}

func TestEvaluateToleratesLostInsertRace(t *testing.T) {
	store := &stubAchievementStore{failNext: fmt.Errorf("%w: achievement running/10000 already awarded", models.ErrConflict)}
	reader := &stubExerciseReader{exercises: []models.Exercise{runningRecord(1, 60000)}}
	service := NewAchievementService(store, reader)

	awarded, err := service.EvaluateAfterRecord(1, models.ExerciseRunning)
	if err != nil {
		t.Fatalf("a lost insert race must not fail the evaluation: %v", err)
	}
	if awarded == nil || awarded.Milestone != 50000 {
		t.Fatalf("evaluation should continue past the lost race, got %+v", awarded)
	}
}

func TestWeightliftingTotalIsVolume(t *testing.T) {
	exercise := models.Exercise{
		Type:    models.ExerciseWeightlifting,
		Metrics: models.Metrics{"weight": 50, "sets": 4, "reps": 10},
	}
	if got := PrimaryMetricValue(exercise); got != 2000 {
		t.Fatalf("expected volume 2000, got %v", got)
	}
}

func TestMilestonesForReturnsCopy(t *testing.T) {
	first := MilestonesFor(models.ExerciseCycling)
	first[0] = 1
	second := MilestonesFor(models.ExerciseCycling)
	if second[0] != 50000 {
		t.Fatalf("mutating a returned slice must not affect the table, got %v", second)
	}
}

func TestListForUserByTypeGroupsAchievements(t *testing.T) {
	store := &stubAchievementStore{achievements: []models.Achievement{
		{ID: 1, UserID: 1, ExerciseType: models.ExerciseRunning, Milestone: 10000},
		{ID: 2, UserID: 1, ExerciseType: models.ExerciseRunning, Milestone: 50000},
		{ID: 3, UserID: 1, ExerciseType: models.ExerciseYoga, Milestone: 100},
		{ID: 4, UserID: 2, ExerciseType: models.ExerciseYoga, Milestone: 100},
	}}
	service := NewAchievementService(store, &stubExerciseReader{})

	grouped, err := service.ListForUserByType(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(grouped[models.ExerciseRunning]) != 2 || len(grouped[models.ExerciseYoga]) != 1 {
		t.Fatalf("unexpected grouping: %v", grouped)
	}
}
