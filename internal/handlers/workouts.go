package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/utils"
)

// WorkoutHandler serves the workout CRUD routes
type WorkoutHandler struct {
	DB *gorm.DB
}

// ListWorkouts handles GET /api/workouts
// @Summary List workouts
// @Description All workouts owned by the caller, newest calendar day first
// @Tags Workouts
// @Produce json
// @Success 200 {array} models.Workout
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts [get]
// @Security CookieAuth
func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	workouts, err := services.GetWorkouts(h.DB, user.ID)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to fetch workouts", fiber.StatusInternalServerError, "listWorkouts")
	}
	return utils.SuccessResponse(c, workouts, fiber.StatusOK)
}

// ListWorkoutsByDate handles GET /api/workouts/date/:date
// @Summary List workouts for one day
// @Description The caller's workouts for an exact calendar day, in creation order
// @Tags Workouts
// @Produce json
// @Param date path string true "Calendar day (yyyy-MM-dd)"
// @Success 200 {array} models.Workout
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/date/{date} [get]
// @Security CookieAuth
func (h *WorkoutHandler) ListWorkoutsByDate(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	date, err := types.ParseDate(c.Params("date"))
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid date", []types.FieldError{
			{Field: "date", Rule: "datetime", Message: "date must be a calendar day in yyyy-MM-dd form"},
		})
	}

	workouts, err := services.GetWorkoutsByDate(h.DB, user.ID, date)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to fetch workouts", fiber.StatusInternalServerError, "listWorkoutsByDate")
	}
	return utils.SuccessResponse(c, workouts, fiber.StatusOK)
}

// GetWorkout handles GET /api/workouts/:id
// @Summary Get one workout
// @Description A single workout, 404 when absent or owned by someone else
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} models.Workout
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/{id} [get]
// @Security CookieAuth
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	id := c.Params("id")
	workout, err := services.GetWorkoutByID(h.DB, id, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Workout not found")
		}
		return utils.ErrorResponse(c, "Failed to fetch workout", fiber.StatusInternalServerError, "getWorkout")
	}
	return utils.SuccessResponse(c, workout, fiber.StatusOK)
}

// CreateWorkout handles POST /api/workouts
// @Summary Create a workout
// @Description Validates the payload and persists a workout for the caller
// @Tags Workouts
// @Accept json
// @Produce json
// @Param body body schema.WorkoutInput true "Workout to create"
// @Success 201 {object} models.Workout
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts [post]
// @Security CookieAuth
func (h *WorkoutHandler) CreateWorkout(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	var input schema.WorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "createWorkout")
	}
	if fieldErrs := schema.Validate(&input); fieldErrs != nil {
		return utils.ValidationErrorResponse(c, "Invalid workout data", fieldErrs)
	}

	workout, err := services.CreateWorkout(h.DB, user.ID, &input)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to create workout", fiber.StatusInternalServerError, "createWorkout")
	}
	return utils.SuccessResponse(c, workout, fiber.StatusCreated)
}

// UpdateWorkout handles PATCH /api/workouts/:id
// @Summary Update a workout
// @Description Merges the provided fields into the workout scoped by owner
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param body body schema.WorkoutUpdate true "Fields to update"
// @Success 200 {object} models.Workout
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/{id} [patch]
// @Security CookieAuth
func (h *WorkoutHandler) UpdateWorkout(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	var update schema.WorkoutUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "updateWorkout")
	}
	if fieldErrs := schema.Validate(&update); fieldErrs != nil {
		return utils.ValidationErrorResponse(c, "Invalid workout data", fieldErrs)
	}

	id := c.Params("id")
	workout, err := services.UpdateWorkout(h.DB, id, user.ID, &update)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Workout not found")
		}
		return utils.ErrorResponse(c, "Failed to update workout", fiber.StatusInternalServerError, "updateWorkout")
	}
	return utils.SuccessResponse(c, workout, fiber.StatusOK)
}

// DeleteWorkout handles DELETE /api/workouts/:id
// @Summary Delete a workout
// @Description Removes the workout and, via the database, its exercises
// @Tags Workouts
// @Param id path string true "Workout ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/{id} [delete]
// @Security CookieAuth
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	id := c.Params("id")
	if err := services.DeleteWorkout(h.DB, id, user.ID); err != nil {
		return utils.ErrorResponse(c, "Failed to delete workout", fiber.StatusInternalServerError, "deleteWorkout")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
