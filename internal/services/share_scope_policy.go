package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/fitledger/fitledger/internal/models"
)

// ShareScopeInput is the untyped scope shape arriving from the API layer.
type ShareScopeInput struct {
	ExerciseTypes    []string `json:"exercise_types"`
	MeasurementTypes []string `json:"body_measurement_types"`
	Achievements     []string `json:"achievements"`
}

// ParseShareScope validates and canonicalizes a scope: every entry must
// parse as its closed type, at least one category must be non-empty, and the
// lists come out sorted and deduplicated so equal scopes serialize equally.
func ParseShareScope(input ShareScopeInput) (models.ShareScope, error) {
	scope := models.ShareScope{
		ExerciseTypes:    make([]models.ExerciseType, 0, len(input.ExerciseTypes)),
		MeasurementTypes: make([]models.MeasurementType, 0, len(input.MeasurementTypes)),
		Achievements:     make([]models.ExerciseType, 0, len(input.Achievements)),
	}

	for _, raw := range input.ExerciseTypes {
		exerciseType, err := models.ParseExerciseType(raw)
		if err != nil {
			return models.ShareScope{}, err
		}
		scope.ExerciseTypes = append(scope.ExerciseTypes, exerciseType)
	}
	for _, raw := range input.MeasurementTypes {
		measurementType, err := models.ParseMeasurementType(raw)
		if err != nil {
			return models.ShareScope{}, err
		}
		scope.MeasurementTypes = append(scope.MeasurementTypes, measurementType)
	}
	// Achievement scope entries are exercise type names: sharing
	// "achievements: [running]" exposes the running milestones.
	for _, raw := range input.Achievements {
		exerciseType, err := models.ParseExerciseType(raw)
		if err != nil {
			return models.ShareScope{}, err
		}
		scope.Achievements = append(scope.Achievements, exerciseType)
	}

	scope.ExerciseTypes = dedupeExerciseTypes(scope.ExerciseTypes)
	scope.MeasurementTypes = dedupeMeasurementTypes(scope.MeasurementTypes)
	scope.Achievements = dedupeExerciseTypes(scope.Achievements)

	if scope.IsEmpty() {
		return models.ShareScope{}, fmt.Errorf(
			"%w: at least one of exercise_types, body_measurement_types, achievements must be present in scope",
			models.ErrValidation,
		)
	}
	return scope, nil
}

// ValidateShareWindow checks the inclusive date window of a share.
func ValidateShareWindow(start time.Time, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: share window requires both start and end dates", models.ErrValidation)
	}
	if start.After(end) {
		return fmt.Errorf("%w: share window start must not be after end", models.ErrValidation)
	}
	return nil
}

func dedupeExerciseTypes(values []models.ExerciseType) []models.ExerciseType {
	seen := make(map[models.ExerciseType]struct{}, len(values))
	out := make([]models.ExerciseType, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupeMeasurementTypes(values []models.MeasurementType) []models.MeasurementType {
	seen := make(map[models.MeasurementType]struct{}, len(values))
	out := make([]models.MeasurementType, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
