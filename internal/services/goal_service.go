package services

import (
	"fmt"
	"time"

	"github.com/fitledger/fitledger/internal/models"
)

type GoalStore interface {
	Create(goal *models.Goal) error
	FindByIDForUser(goalID uint, userID uint) (models.Goal, bool, error)
	ListByUser(userID uint) ([]models.Goal, error)
	Save(goal *models.Goal) error
	MarkAchieved(goalID uint) error
	Delete(goalID uint, userID uint) (bool, error)
}

type GoalExerciseReader interface {
	ListByUserAndType(userID uint, exerciseType models.ExerciseType) ([]models.Exercise, error)
}

type GoalService struct {
	goals     GoalStore
	exercises GoalExerciseReader
	clock     func() time.Time
}

// GoalInput carries the user-editable goal fields.
type GoalInput struct {
	ExerciseType models.ExerciseType
	Metric       string
	TargetValue  float64
	Description  string
}

// GoalWithProgress pairs a goal with its derived current value for listings.
type GoalWithProgress struct {
	Goal         models.Goal `json:"goal"`
	CurrentValue float64     `json:"current_value"`
}

func NewGoalService(goals GoalStore, exercises GoalExerciseReader) *GoalService {
	return &GoalService{
		goals:     goals,
		exercises: exercises,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func validateGoalInput(input GoalInput) error {
	if input.TargetValue <= 0 {
		return fmt.Errorf("%w: goal target value must be greater than 0", models.ErrValidation)
	}
	for _, field := range requiredMetricKeys[input.ExerciseType] {
		if field == input.Metric {
			return nil
		}
	}
	return fmt.Errorf("%w: metric %q is not tracked for exercise type %q", models.ErrValidation, input.Metric, input.ExerciseType)
}

func (service *GoalService) CreateGoal(userID uint, input GoalInput) (models.Goal, error) {
	if err := validateGoalInput(input); err != nil {
		return models.Goal{}, err
	}

	goal := models.Goal{
		UserID:       userID,
		ExerciseType: input.ExerciseType,
		Metric:       input.Metric,
		TargetValue:  input.TargetValue,
		Description:  input.Description,
		CreatedAt:    service.clock(),
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, fmt.Errorf("persist goal: %w", err)
	}
	return goal, nil
}

// Progress computes the goal's current value by summing the named metric
// over the user's exercises of the goal's type. Records missing the metric
// contribute 0. An achieved goal is frozen: its progress reports the target
// without recomputation, so a completed goal never regresses. The first time
// the sum reaches the target the achieved flag is persisted as a side effect
// of this read.
func (service *GoalService) Progress(goal *models.Goal) (float64, error) {
	if goal.Achieved {
		return goal.TargetValue, nil
	}

	exercises, err := service.exercises.ListByUserAndType(goal.UserID, goal.ExerciseType)
	if err != nil {
		return 0, fmt.Errorf("load exercises for goal progress: %w", err)
	}

	var sum float64
	for _, exercise := range exercises {
		sum += exercise.Metrics[goal.Metric]
	}

	if sum >= goal.TargetValue {
		if err := service.goals.MarkAchieved(goal.ID); err != nil {
			return 0, fmt.Errorf("mark goal achieved: %w", err)
		}
		goal.Achieved = true
	}
	return sum, nil
}

func (service *GoalService) ProgressByID(userID uint, goalID uint) (GoalWithProgress, error) {
	goal, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return GoalWithProgress{}, fmt.Errorf("load goal: %w", err)
	}
	if !found {
		return GoalWithProgress{}, fmt.Errorf("%w: goal %d", models.ErrNotFound, goalID)
	}

	current, err := service.Progress(&goal)
	if err != nil {
		return GoalWithProgress{}, err
	}
	return GoalWithProgress{Goal: goal, CurrentValue: current}, nil
}

func (service *GoalService) ListWithProgress(userID uint) ([]GoalWithProgress, error) {
	goals, err := service.goals.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]GoalWithProgress, 0, len(goals))
	for index := range goals {
		current, err := service.Progress(&goals[index])
		if err != nil {
			return nil, err
		}
		out = append(out, GoalWithProgress{Goal: goals[index], CurrentValue: current})
	}
	return out, nil
}

// UpdateGoal edits the user-editable fields. The achieved flag is never
// reset: once a goal completed it stays completed.
func (service *GoalService) UpdateGoal(userID uint, goalID uint, input GoalInput) (models.Goal, error) {
	if err := validateGoalInput(input); err != nil {
		return models.Goal{}, err
	}

	goal, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, fmt.Errorf("load goal: %w", err)
	}
	if !found {
		return models.Goal{}, fmt.Errorf("%w: goal %d", models.ErrNotFound, goalID)
	}

	goal.ExerciseType = input.ExerciseType
	goal.Metric = input.Metric
	goal.TargetValue = input.TargetValue
	goal.Description = input.Description
	if err := service.goals.Save(&goal); err != nil {
		return models.Goal{}, fmt.Errorf("save goal: %w", err)
	}
	return goal, nil
}

func (service *GoalService) DeleteGoal(userID uint, goalID uint) error {
	deleted, err := service.goals.Delete(goalID, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: goal %d", models.ErrNotFound, goalID)
	}
	return nil
}
