package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/fitledger/fitledger/internal/models"
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type ScheduleStore interface {
	Create(schedule *models.WorkoutSchedule) error
	FindByIDForUser(scheduleID uint, userID uint) (models.WorkoutSchedule, bool, error)
	ListByUser(userID uint) ([]models.WorkoutSchedule, error)
	Save(schedule *models.WorkoutSchedule) error
	Delete(scheduleID uint, userID uint) (bool, error)
}

type ScheduleService struct {
	schedules ScheduleStore
	clock     func() time.Time
}

type ScheduleInput struct {
	ExerciseType models.ExerciseType
	DayOfWeek    int
	TimeOfDay    string
	Note         string
}

func NewScheduleService(schedules ScheduleStore) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

func validateScheduleInput(input ScheduleInput) error {
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be between 0 and 6", models.ErrValidation)
	}
	if !timeOfDayPattern.MatchString(input.TimeOfDay) {
		return fmt.Errorf("%w: time of day must be HH:MM", models.ErrValidation)
	}
	return nil
}

func (service *ScheduleService) CreateSchedule(userID uint, input ScheduleInput) (models.WorkoutSchedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return models.WorkoutSchedule{}, err
	}

	schedule := models.WorkoutSchedule{
		UserID:       userID,
		ExerciseType: input.ExerciseType,
		DayOfWeek:    input.DayOfWeek,
		TimeOfDay:    input.TimeOfDay,
		Note:         input.Note,
		CreatedAt:    service.clock(),
	}
	if err := service.schedules.Create(&schedule); err != nil {
		return models.WorkoutSchedule{}, fmt.Errorf("persist schedule: %w", err)
	}
	return schedule, nil
}

func (service *ScheduleService) ListForUser(userID uint) ([]models.WorkoutSchedule, error) {
	return service.schedules.ListByUser(userID)
}

func (service *ScheduleService) UpdateSchedule(userID uint, scheduleID uint, input ScheduleInput) (models.WorkoutSchedule, error) {
	if err := validateScheduleInput(input); err != nil {
		return models.WorkoutSchedule{}, err
	}

	schedule, found, err := service.schedules.FindByIDForUser(scheduleID, userID)
	if err != nil {
		return models.WorkoutSchedule{}, fmt.Errorf("load schedule: %w", err)
	}
	if !found {
		return models.WorkoutSchedule{}, fmt.Errorf("%w: schedule %d", models.ErrNotFound, scheduleID)
	}

	schedule.ExerciseType = input.ExerciseType
	schedule.DayOfWeek = input.DayOfWeek
	schedule.TimeOfDay = input.TimeOfDay
	schedule.Note = input.Note
	if err := service.schedules.Save(&schedule); err != nil {
		return models.WorkoutSchedule{}, fmt.Errorf("save schedule: %w", err)
	}
	return schedule, nil
}

func (service *ScheduleService) DeleteSchedule(userID uint, scheduleID uint) error {
	deleted, err := service.schedules.Delete(scheduleID, userID)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: schedule %d", models.ErrNotFound, scheduleID)
	}
	return nil
}
