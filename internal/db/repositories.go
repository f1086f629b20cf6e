package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Exercises    *ExerciseRepository
	Measurements *MeasurementRepository
	Goals        *GoalRepository
	Achievements *AchievementRepository
	Shares       *ShareRepository
	Schedules    *ScheduleRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Exercises:    NewExerciseRepository(database),
		Measurements: NewMeasurementRepository(database),
		Goals:        NewGoalRepository(database),
		Achievements: NewAchievementRepository(database),
		Shares:       NewShareRepository(database),
		Schedules:    NewScheduleRepository(database),
	}
}
