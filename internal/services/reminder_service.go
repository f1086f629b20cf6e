package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fitledger/fitledger/internal/models"
)

const reminderLookahead = time.Hour

type ReminderScheduleReader interface {
	ListByDayOfWeek(dayOfWeek int) ([]models.WorkoutSchedule, error)
}

// ReminderService periodically scans workout schedules and logs the ones
// coming up within the next hour.
type ReminderService struct {
	schedules ReminderScheduleReader
	location  *time.Location
	cron      *cron.Cron
}

func NewReminderService(schedules ReminderScheduleReader, location *time.Location) *ReminderService {
	return &ReminderService{
		schedules: schedules,
		location:  location,
		cron:      cron.New(cron.WithLocation(location)),
	}
}

func (service *ReminderService) Start() error {
	if _, err := service.cron.AddFunc("@every 15m", service.scanOnce); err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	service.cron.Start()
	return nil
}

func (service *ReminderService) Stop() {
	ctx := service.cron.Stop()
	<-ctx.Done()
}

func (service *ReminderService) scanOnce() {
	now := time.Now().In(service.location)
	schedules, err := service.schedules.ListByDayOfWeek(int(now.Weekday()))
	if err != nil {
		log.Printf("reminder scan failed: %v", err)
		return
	}
	for _, schedule := range DueWithin(schedules, now, reminderLookahead) {
		log.Printf("reminder: user %d has %s scheduled at %s", schedule.UserID, schedule.ExerciseType, schedule.TimeOfDay)
	}
}

// DueWithin filters today's schedules down to those whose slot starts inside
// [now, now+window]. Entries with malformed times are skipped.
func DueWithin(schedules []models.WorkoutSchedule, now time.Time, window time.Duration) []models.WorkoutSchedule {
	due := make([]models.WorkoutSchedule, 0)
	for _, schedule := range schedules {
		if int(now.Weekday()) != schedule.DayOfWeek {
			continue
		}
		slot, err := time.ParseInLocation("15:04", schedule.TimeOfDay, now.Location())
		if err != nil {
			continue
		}
		slotToday := time.Date(now.Year(), now.Month(), now.Day(), slot.Hour(), slot.Minute(), 0, 0, now.Location())
		if slotToday.Before(now) || slotToday.After(now.Add(window)) {
			continue
		}
		due = append(due, schedule)
	}
	return due
}
