package services

import (
	"errors"
	"testing"
	"time"

	"github.com/fitledger/fitledger/internal/models"
)

type stubScheduleStore struct {
	schedules map[uint]*models.WorkoutSchedule
	nextID    uint
}

func newStubScheduleStore() *stubScheduleStore {
	return &stubScheduleStore{schedules: make(map[uint]*models.WorkoutSchedule)}
}

func (store *stubScheduleStore) Create(schedule *models.WorkoutSchedule) error {
	store.nextID++
	schedule.ID = store.nextID
	copied := *schedule
	store.schedules[schedule.ID] = &copied
	return nil
}

func (store *stubScheduleStore) FindByIDForUser(scheduleID uint, userID uint) (models.WorkoutSchedule, bool, error) {
	schedule, ok := store.schedules[scheduleID]
	if !ok || schedule.UserID != userID {
		return models.WorkoutSchedule{}, false, nil
	}
	return *schedule, true, nil
}

func (store *stubScheduleStore) ListByUser(userID uint) ([]models.WorkoutSchedule, error) {
	var out []models.WorkoutSchedule
	for _, schedule := range store.schedules {
		if schedule.UserID == userID {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (store *stubScheduleStore) Save(schedule *models.WorkoutSchedule) error {
	copied := *schedule
	store.schedules[schedule.ID] = &copied
	return nil
}

func (store *stubScheduleStore) Delete(scheduleID uint, userID uint) (bool, error) {
	schedule, ok := store.schedules[scheduleID]
	if !ok || schedule.UserID != userID {
		return false, nil
	}
	delete(store.schedules, scheduleID)
	return true, nil
}

func TestCreateScheduleValidation(t *testing.T) {
	service := NewScheduleService(newStubScheduleStore())

	cases := []ScheduleInput{
		{ExerciseType: models.ExerciseRunning, DayOfWeek: 7, TimeOfDay: "07:00"},
		{ExerciseType: models.ExerciseRunning, DayOfWeek: -1, TimeOfDay: "07:00"},
		{ExerciseType: models.ExerciseRunning, DayOfWeek: 1, TimeOfDay: "25:00"},
		{ExerciseType: models.ExerciseRunning, DayOfWeek: 1, TimeOfDay: "7am"},
		{ExerciseType: models.ExerciseRunning, DayOfWeek: 1, TimeOfDay: ""},
	}
	for _, input := range cases {
		if _, err := service.CreateSchedule(1, input); !errors.Is(err, models.ErrValidation) {
			t.Fatalf("input %+v: expected validation error, got %v", input, err)
		}
	}

	schedule, err := service.CreateSchedule(1, ScheduleInput{ExerciseType: models.ExerciseRunning, DayOfWeek: 1, TimeOfDay: "07:00", Note: "intervals"})
	if err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}
	if schedule.ID == 0 {
		t.Fatalf("schedule should be persisted with an id")
	}
}

func TestScheduleAccessIsScopedToOwner(t *testing.T) {
	service := NewScheduleService(newStubScheduleStore())

	schedule, err := service.CreateSchedule(1, ScheduleInput{ExerciseType: models.ExerciseYoga, DayOfWeek: 2, TimeOfDay: "18:30"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := ScheduleInput{ExerciseType: models.ExerciseYoga, DayOfWeek: 3, TimeOfDay: "18:30"}
	if _, err := service.UpdateSchedule(2, schedule.ID, input); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("other user's update: expected not found, got %v", err)
	}
	if err := service.DeleteSchedule(2, schedule.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("other user's delete: expected not found, got %v", err)
	}

	updated, err := service.UpdateSchedule(1, schedule.ID, input)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.DayOfWeek != 3 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if err := service.DeleteSchedule(1, schedule.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestDueWithin(t *testing.T) {
	// 2026-03-02 is a Monday.
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	schedules := []models.WorkoutSchedule{
		{ID: 1, DayOfWeek: 1, TimeOfDay: "07:30"},
		{ID: 2, DayOfWeek: 1, TimeOfDay: "08:00"},
		{ID: 3, DayOfWeek: 1, TimeOfDay: "08:01"},
		{ID: 4, DayOfWeek: 1, TimeOfDay: "06:59"},
		{ID: 5, DayOfWeek: 2, TimeOfDay: "07:30"},
		{ID: 6, DayOfWeek: 1, TimeOfDay: "soon"},
	}

	due := DueWithin(schedules, now, time.Hour)
	if len(due) != 2 {
		t.Fatalf("expected schedules 1 and 2 to be due, got %+v", due)
	}
	if due[0].ID != 1 || due[1].ID != 2 {
		t.Fatalf("unexpected due set: %+v", due)
	}
}
