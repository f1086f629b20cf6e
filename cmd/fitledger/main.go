package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fitledger/fitledger/internal/api"
	"github.com/fitledger/fitledger/internal/cli"
	"github.com/fitledger/fitledger/internal/config"
	"github.com/fitledger/fitledger/internal/db"
	"github.com/fitledger/fitledger/internal/observability"
	"github.com/fitledger/fitledger/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: fitledger reset-password <username>")
		}
		if err := cli.RunResetPasswordCommand(cfg.DatabaseURL, os.Args[2]); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(cfg.Timezone)

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)

	authService := services.NewAuthService(repos.Users)
	achievementService := services.NewAchievementService(repos.Achievements, repos.Exercises)
	exerciseService := services.NewExerciseService(repos.Exercises, achievementService)
	measurementService := services.NewMeasurementService(repos.Measurements)
	goalService := services.NewGoalService(repos.Goals, repos.Exercises)
	shareService := services.NewShareService(repos.Shares, repos.Users, services.SharedRecordReaders{
		Exercises:    repos.Exercises,
		Measurements: repos.Measurements,
		Achievements: repos.Achievements,
	})
	scheduleService := services.NewScheduleService(repos.Schedules)

	handler := api.NewHandler(api.HandlerDependencies{
		Auth:         authService,
		Exercises:    exerciseService,
		Measurements: measurementService,
		Goals:        goalService,
		Achievements: achievementService,
		Shares:       shareService,
		Schedules:    scheduleService,
		SecretKey:    cfg.JWTSecret,
		BaseURL:      fmt.Sprintf("http://localhost:%s", cfg.Port),
	})

	app := fiber.New(fiber.Config{
		AppName:               "FitLedger",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	reminder := services.NewReminderService(repos.Schedules, location)
	if err := reminder.Start(); err != nil {
		log.Fatalf("reminder service start failed: %v", err)
	}

	go func() {
		if err := observability.Serve(":" + cfg.MetricsPort); err != nil {
			log.Printf("metrics listener exited: %v", err)
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		reminder.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("FitLedger listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DatabaseURL, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
