package api

import (
	"time"

	"github.com/fitledger/fitledger/internal/services"
)

type Handler struct {
	auth         *services.AuthService
	exercises    *services.ExerciseService
	measurements *services.MeasurementService
	goals        *services.GoalService
	achievements *services.AchievementService
	shares       *services.ShareService
	schedules    *services.ScheduleService
	secretKey    []byte
	baseURL      string
}

type HandlerDependencies struct {
	Auth         *services.AuthService
	Exercises    *services.ExerciseService
	Measurements *services.MeasurementService
	Goals        *services.GoalService
	Achievements *services.AchievementService
	Shares       *services.ShareService
	Schedules    *services.ScheduleService
	SecretKey    string
	BaseURL      string
}

func NewHandler(deps HandlerDependencies) *Handler {
	return &Handler{
		auth:         deps.Auth,
		exercises:    deps.Exercises,
		measurements: deps.Measurements,
		goals:        deps.Goals,
		achievements: deps.Achievements,
		shares:       deps.Shares,
		schedules:    deps.Schedules,
		secretKey:    []byte(deps.SecretKey),
		baseURL:      deps.BaseURL,
	}
}

const authTokenTTL = 7 * 24 * time.Hour
