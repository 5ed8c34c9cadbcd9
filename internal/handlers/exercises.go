package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/utils"
)

// ExerciseHandler serves the exercise CRUD routes.
//
// Exercise reads and creates run under /workouts/:workoutId and verify the
// workout's owner first. The by-id mutation routes rely on the caller having
// obtained the id through that owner-scoped path and do not re-check
// ownership themselves.
type ExerciseHandler struct {
	DB *gorm.DB
}

// ListExercises handles GET /api/workouts/:workoutId/exercises
// @Summary List a workout's exercises
// @Description Exercises ordered by their sequence within the workout
// @Tags Exercises
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {array} models.Exercise
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/{workoutId}/exercises [get]
// @Security CookieAuth
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	workoutID := c.Params("workoutId")
	if _, err := services.GetWorkoutByID(h.DB, workoutID, user.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Workout not found")
		}
		return utils.ErrorResponse(c, "Failed to fetch workout", fiber.StatusInternalServerError, "listExercises")
	}

	exercises, err := services.GetExercisesByWorkout(h.DB, workoutID)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to fetch exercises", fiber.StatusInternalServerError, "listExercises")
	}
	return utils.SuccessResponse(c, exercises, fiber.StatusOK)
}

// CreateExercise handles POST /api/workouts/:workoutId/exercises
// @Summary Create an exercise
// @Description Validates the payload and appends an exercise to the workout
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param body body schema.ExerciseInput true "Exercise to create"
// @Success 201 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/{workoutId}/exercises [post]
// @Security CookieAuth
func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	user, err := middleware.UserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	workoutID := c.Params("workoutId")
	if _, err := services.GetWorkoutByID(h.DB, workoutID, user.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Workout not found")
		}
		return utils.ErrorResponse(c, "Failed to fetch workout", fiber.StatusInternalServerError, "createExercise")
	}

	var input schema.ExerciseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "createExercise")
	}
	if fieldErrs := schema.Validate(&input); fieldErrs != nil {
		return utils.ValidationErrorResponse(c, "Invalid exercise data", fieldErrs)
	}

	exercise, err := services.CreateExercise(h.DB, workoutID, &input)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to create exercise", fiber.StatusInternalServerError, "createExercise")
	}
	return utils.SuccessResponse(c, exercise, fiber.StatusCreated)
}

// UpdateExercise handles PATCH /api/exercises/:id
// @Summary Update an exercise
// @Description Merges the provided fields into the exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param body body schema.ExerciseUpdate true "Fields to update"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [patch]
// @Security CookieAuth
func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	if _, err := middleware.UserFromContext(c); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	var update schema.ExerciseUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "updateExercise")
	}
	if fieldErrs := schema.Validate(&update); fieldErrs != nil {
		return utils.ValidationErrorResponse(c, "Invalid exercise data", fieldErrs)
	}

	id := c.Params("id")
	exercise, err := services.UpdateExercise(h.DB, id, &update)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Exercise not found")
		}
		return utils.ErrorResponse(c, "Failed to update exercise", fiber.StatusInternalServerError, "updateExercise")
	}
	return utils.SuccessResponse(c, exercise, fiber.StatusOK)
}

// DeleteExercise handles DELETE /api/exercises/:id
// @Summary Delete an exercise
// @Tags Exercises
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [delete]
// @Security CookieAuth
func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	if _, err := middleware.UserFromContext(c); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "authorization.user")
	}

	id := c.Params("id")
	if err := services.DeleteExercise(h.DB, id); err != nil {
		return utils.ErrorResponse(c, "Failed to delete exercise", fiber.StatusInternalServerError, "deleteExercise")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
