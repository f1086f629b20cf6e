package services

import (
	"encoding/json"
	"fmt"

	"github.com/fitledger/fitledger/internal/models"
)

// requiredMetricKeys maps each exercise type to the ordered metric fields a
// logged activity of that type must carry. Distances are meters, durations
// minutes, weights kilograms.
var requiredMetricKeys = map[models.ExerciseType][]string{
	models.ExerciseCycling:       {"distance", "duration"},
	models.ExerciseRunning:       {"distance", "duration"},
	models.ExerciseSwimming:      {"distance", "duration"},
	models.ExerciseWeightlifting: {"weight", "sets", "reps"},
	models.ExerciseYoga:          {"duration"},
}

// RequiredMetricsFor returns the required metric fields for an exercise
// type. The result is a copy; the table itself never changes.
func RequiredMetricsFor(exerciseType models.ExerciseType) []string {
	keys := requiredMetricKeys[exerciseType]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ExerciseCatalog lists every exercise type with its required metrics, for
// the API's catalog endpoint.
func ExerciseCatalog() map[models.ExerciseType][]string {
	catalog := make(map[models.ExerciseType][]string, len(requiredMetricKeys))
	for _, exerciseType := range models.AllExerciseTypes() {
		catalog[exerciseType] = RequiredMetricsFor(exerciseType)
	}
	return catalog
}

// ValidateExerciseMetrics checks a metrics map against the requirements of
// the exercise type: every required field present and strictly positive.
// Extra fields pass through untouched. Pure; the map is returned as given.
func ValidateExerciseMetrics(exerciseType models.ExerciseType, metrics models.Metrics) error {
	for _, field := range requiredMetricKeys[exerciseType] {
		value, present := metrics[field]
		if !present {
			return fmt.Errorf("%w: field %q is required for exercise type %q", models.ErrValidation, field, exerciseType)
		}
		if value <= 0 {
			return fmt.Errorf("%w: field %q must be greater than 0 for exercise type %q", models.ErrValidation, field, exerciseType)
		}
	}
	return nil
}

// CoerceMetrics converts a decoded JSON object into a Metrics map, rejecting
// null and non-numeric values with the offending field named.
func CoerceMetrics(exerciseType models.ExerciseType, raw map[string]any) (models.Metrics, error) {
	metrics := make(models.Metrics, len(raw))
	for field, value := range raw {
		switch typed := value.(type) {
		case float64:
			metrics[field] = typed
		case json.Number:
			parsed, err := typed.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: field %q must be a number for exercise type %q", models.ErrValidation, field, exerciseType)
			}
			metrics[field] = parsed
		default:
			return nil, fmt.Errorf("%w: field %q must be a number for exercise type %q", models.ErrValidation, field, exerciseType)
		}
	}
	return metrics, nil
}
