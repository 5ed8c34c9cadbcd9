package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// CreateTestUser creates an identity row the way the auth middleware would.
func CreateTestUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	email := id + "@example.com"
	user := models.User{ID: id, Email: &email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", id, err)
	}
	return &user
}

// CreateTestWorkout creates a workout on the given calendar day.
func CreateTestWorkout(t *testing.T, db *gorm.DB, userID, name, date string) *models.Workout {
	t.Helper()

	d, err := types.ParseDate(date)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", date, err)
	}
	workout := models.Workout{UserID: userID, Name: name, Date: d}
	if err := db.Create(&workout).Error; err != nil {
		t.Fatalf("Failed to create workout %s: %v", name, err)
	}
	return &workout
}

// CreateTestExercise creates an exercise with explicit targets.
func CreateTestExercise(t *testing.T, db *gorm.DB, workoutID, name string, sets, reps, restDuration int) *models.Exercise {
	t.Helper()

	exercise := models.Exercise{
		WorkoutID:    workoutID,
		Name:         name,
		Sets:         sets,
		Reps:         reps,
		RestDuration: restDuration,
		MaxCount:     sets,
	}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("Failed to create exercise %s: %v", name, err)
	}
	return &exercise
}
