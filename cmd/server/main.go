package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/config"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/database"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/handlers"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"

	_ "github.com/NguyenThanhHungDev140503/FitTracker-Web/docs/api" // Swagger docs
)

// @title FitTracker API
// @version 1.0.0
// @description Workout tracking service: calendar-scheduled workouts with exercises and completion progress

// @contact.name API Support
// @contact.url https://github.com/NguyenThanhHungDev140503/FitTracker-Web

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{AllowCredentials: true}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("fittracker")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db}
	workoutHandler := &handlers.WorkoutHandler{DB: db}
	exerciseHandler := &handlers.ExerciseHandler{DB: db}

	// API routes under /api, all session-authenticated
	api := app.Group("/api", middleware.AuthUser(cfg, db))

	api.Get("/auth/user", authHandler.GetCurrentUser)
	api.Get("/auth/user/preferences", authHandler.GetPreferences)
	api.Put("/auth/user/preferences", authHandler.UpdatePreferences)

	api.Get("/workouts", workoutHandler.ListWorkouts)
	api.Get("/workouts/date/:date", workoutHandler.ListWorkoutsByDate)
	api.Get("/workouts/:id", workoutHandler.GetWorkout)
	api.Post("/workouts", workoutHandler.CreateWorkout)
	api.Patch("/workouts/:id", workoutHandler.UpdateWorkout)
	api.Delete("/workouts/:id", workoutHandler.DeleteWorkout)

	api.Get("/workouts/:workoutId/exercises", exerciseHandler.ListExercises)
	api.Post("/workouts/:workoutId/exercises", exerciseHandler.CreateExercise)
	api.Patch("/exercises/:id", exerciseHandler.UpdateExercise)
	api.Delete("/exercises/:id", exerciseHandler.DeleteExercise)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logrus.Info("gracefully shutting down")
		_ = app.Shutdown()
	}()

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}

	logrus.Info("server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
