package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// setupTestDB creates an in-memory SQLite database for testing. Foreign key
// enforcement is switched on so the delete cascade behaves like MariaDB.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// seedUser creates an identity row the way the auth middleware would.
func seedUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	email := id + "@example.com"
	user := models.User{ID: id, Email: &email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", id, err)
	}
	return &user
}

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()

	d, err := types.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", s, err)
	}
	return d
}

func TestCreateWorkoutDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	workout, err := services.CreateWorkout(db, user.ID, &schema.WorkoutInput{
		Name: "Leg Day",
		Date: "2024-05-01",
	})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	if workout.ID == "" {
		t.Error("Expected a generated id")
	}
	if workout.Color != models.DefaultWorkoutColor {
		t.Errorf("Expected default color %s, got %s", models.DefaultWorkoutColor, workout.Color)
	}
	if workout.Completed {
		t.Error("Expected a new workout to be incomplete")
	}
	if workout.Date.String() != "2024-05-01" {
		t.Errorf("Expected date 2024-05-01, got %s", workout.Date.String())
	}
}

func TestGetWorkoutsNewestDayFirst(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	for _, day := range []string{"2024-05-01", "2024-05-03", "2024-05-02"} {
		_, err := services.CreateWorkout(db, user.ID, &schema.WorkoutInput{Name: "W " + day, Date: day})
		if err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	workouts, err := services.GetWorkouts(db, user.ID)
	if err != nil {
		t.Fatalf("GetWorkouts failed: %v", err)
	}

	if len(workouts) != 3 {
		t.Fatalf("Expected 3 workouts, got %d", len(workouts))
	}
	want := []string{"2024-05-03", "2024-05-02", "2024-05-01"}
	for i, w := range workouts {
		if w.Date.String() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], w.Date.String())
		}
	}
}

func TestGetWorkoutsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := services.CreateWorkout(db, alice.ID, &schema.WorkoutInput{Name: "Alice's", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	workouts, err := services.GetWorkouts(db, bob.ID)
	if err != nil {
		t.Fatalf("GetWorkouts failed: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("Expected no workouts for bob, got %d", len(workouts))
	}
}

func TestGetWorkoutsByDate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	first := models.Workout{
		UserID:    user.ID,
		Name:      "Morning",
		Date:      mustDate(t, "2024-05-01"),
		CreatedAt: base,
	}
	second := models.Workout{
		UserID:    user.ID,
		Name:      "Evening",
		Date:      mustDate(t, "2024-05-01"),
		CreatedAt: base.Add(time.Hour),
	}
	other := models.Workout{
		UserID:    user.ID,
		Name:      "Next day",
		Date:      mustDate(t, "2024-05-02"),
		CreatedAt: base,
	}
	// Insert out of creation order to exercise the sort.
	for _, w := range []*models.Workout{&second, &other, &first} {
		if err := db.Create(w).Error; err != nil {
			t.Fatalf("Failed to create workout: %v", err)
		}
	}

	workouts, err := services.GetWorkoutsByDate(db, user.ID, mustDate(t, "2024-05-01"))
	if err != nil {
		t.Fatalf("GetWorkoutsByDate failed: %v", err)
	}

	if len(workouts) != 2 {
		t.Fatalf("Expected 2 workouts on 2024-05-01, got %d", len(workouts))
	}
	if workouts[0].Name != "Morning" || workouts[1].Name != "Evening" {
		t.Errorf("Expected creation order Morning, Evening; got %s, %s",
			workouts[0].Name, workouts[1].Name)
	}
}

func TestGetWorkoutByIDWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	workout, err := services.CreateWorkout(db, alice.ID, &schema.WorkoutInput{Name: "Alice's", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	_, err = services.GetWorkoutByID(db, workout.ID, bob.ID)
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for another user's workout, got %v", err)
	}
}

func TestUpdateWorkout(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	workout, err := services.CreateWorkout(db, user.ID, &schema.WorkoutInput{Name: "Leg Day", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	name := "Leg Day (heavy)"
	completed := true
	updated, err := services.UpdateWorkout(db, workout.ID, user.ID, &schema.WorkoutUpdate{
		Name:      &name,
		Completed: &completed,
	})
	if err != nil {
		t.Fatalf("UpdateWorkout failed: %v", err)
	}

	if updated.Name != name {
		t.Errorf("Expected name %q, got %q", name, updated.Name)
	}
	if !updated.Completed {
		t.Error("Expected workout to be completed")
	}
	// Untouched fields survive a partial update.
	if updated.Date.String() != "2024-05-01" {
		t.Errorf("Expected date to be unchanged, got %s", updated.Date.String())
	}
}

func TestUpdateWorkoutWrongOwner(t *testing.T) {
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	workout, err := services.CreateWorkout(db, alice.ID, &schema.WorkoutInput{Name: "Alice's", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	name := "Hijacked"
	_, err = services.UpdateWorkout(db, workout.ID, bob.ID, &schema.WorkoutUpdate{Name: &name})
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	kept, err := services.GetWorkoutByID(db, workout.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID failed: %v", err)
	}
	if kept.Name != "Alice's" {
		t.Errorf("Expected name to be unchanged, got %q", kept.Name)
	}
}

func TestDeleteWorkoutCascadesToExercises(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	workout, err := services.CreateWorkout(db, user.ID, &schema.WorkoutInput{Name: "Leg Day", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	_, err = services.CreateExercise(db, workout.ID, &schema.ExerciseInput{Name: "Squat"})
	if err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := services.DeleteWorkout(db, workout.ID, user.ID); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	var count int64
	db.Model(&models.Exercise{}).Where("workout_id = ?", workout.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected exercises to cascade on delete, %d remain", count)
	}
}

func TestDeleteWorkoutAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	if err := services.DeleteWorkout(db, "no-such-id", user.ID); err != nil {
		t.Errorf("Expected deleting an absent workout to succeed, got %v", err)
	}
}
