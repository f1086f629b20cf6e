package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("/catalog", handler.ExerciseCatalog)
	exercises.Get("", handler.ListExercises)
	exercises.Post("", handler.RecordExercise)

	measurements := api.Group("/measurements", handler.AuthRequired)
	measurements.Get("/catalog", handler.MeasurementCatalog)
	measurements.Get("", handler.ListMeasurements)
	measurements.Post("", handler.RecordMeasurement)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.CreateGoal)
	goals.Get("/:id/progress", handler.GetGoalProgress)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)

	achievements := api.Group("/achievements", handler.AuthRequired)
	achievements.Get("/catalog", handler.AchievementCatalog)
	achievements.Get("", handler.ListAchievements)

	shares := api.Group("/shares", handler.AuthRequired)
	shares.Get("", handler.ListShares)
	shares.Post("", handler.CreateShare)
	shares.Post("/preview", handler.PreviewShare)
	shares.Get("/:id/qr", handler.ShareQR)
	shares.Get("/:id", handler.ResolveShare)
	shares.Delete("/:id", handler.RevokeShare)

	schedules := api.Group("/schedules", handler.AuthRequired)
	schedules.Get("", handler.ListSchedules)
	schedules.Post("", handler.CreateSchedule)
	schedules.Put("/:id", handler.UpdateSchedule)
	schedules.Delete("/:id", handler.DeleteSchedule)
}
