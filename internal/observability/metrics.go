// Package observability exposes Prometheus collectors for the tracking
// pipeline. Collectors are registered at init time and served on a dedicated
// listener so metric traffic stays off the API port.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	exercisesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitledger_exercises_logged_total",
			Help: "Number of exercise records logged, by exercise type.",
		},
		[]string{"exercise_type"},
	)

	measurementsLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitledger_measurements_logged_total",
			Help: "Number of body measurements logged, by measurement type.",
		},
		[]string{"measurement_type"},
	)

	achievementsAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitledger_achievements_awarded_total",
			Help: "Number of milestone achievements awarded, by exercise type.",
		},
		[]string{"exercise_type"},
	)

	sharesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitledger_shares_created_total",
			Help: "Number of share grants created.",
		},
	)

	sharesResolved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitledger_shares_resolved_total",
			Help: "Number of successful share resolutions.",
		},
	)

	sharesRevoked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitledger_shares_revoked_total",
			Help: "Number of share grants revoked by their sender.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		exercisesLogged,
		measurementsLogged,
		achievementsAwarded,
		sharesCreated,
		sharesResolved,
		sharesRevoked,
	)
}

func RecordExerciseLogged(exerciseType string) {
	exercisesLogged.WithLabelValues(exerciseType).Inc()
}

func RecordMeasurementLogged(measurementType string) {
	measurementsLogged.WithLabelValues(measurementType).Inc()
}

func RecordAchievementAwarded(exerciseType string) {
	achievementsAwarded.WithLabelValues(exerciseType).Inc()
}

func RecordShareCreated() {
	sharesCreated.Inc()
}

func RecordShareResolved() {
	sharesResolved.Inc()
}

func RecordShareRevoked() {
	sharesRevoked.Inc()
}
