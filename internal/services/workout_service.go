package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// GetWorkouts returns every workout owned by the user, newest calendar day
// first.
func GetWorkouts(db *gorm.DB, userID string) ([]models.Workout, error) {
	var workouts []models.Workout
	err := db.Where("user_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkoutsByDate returns the user's workouts for one exact calendar day,
// in creation order. This query backs the calendar day view and runs on every
// date selection, so MySQL is steered onto the covering index.
func GetWorkoutsByDate(db *gorm.DB, userID string, date types.Date) ([]models.Workout, error) {
	query := db.Where("user_id = ? AND date = ?", userID, date)
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_workouts_user_date"))
	}

	var workouts []models.Workout
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkoutByID returns a single workout, or ErrNotFound when the id does
// not exist or belongs to another user.
func GetWorkoutByID(db *gorm.DB, id, userID string) (*models.Workout, error) {
	var workout models.Workout
	err := db.First(&workout, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// CreateWorkout persists a validated create payload for the given owner and
// returns the full record with generated id and timestamps.
func CreateWorkout(db *gorm.DB, userID string, input *schema.WorkoutInput) (*models.Workout, error) {
	date, err := types.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	workout := models.Workout{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Date:        date,
		Color:       input.Color,
	}
	if err := db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkout merges the provided fields into the workout scoped by owner
// and stamps updated_at. ErrNotFound when the id/user pair matches no row.
func UpdateWorkout(db *gorm.DB, id, userID string, update *schema.WorkoutUpdate) (*models.Workout, error) {
	updates, err := update.Updates()
	if err != nil {
		return nil, err
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetWorkoutByID(db, id, userID)
}

// DeleteWorkout removes the workout scoped by owner. Child exercises cascade
// at the database level. Deleting an absent or foreign workout is a no-op.
func DeleteWorkout(db *gorm.DB, id, userID string) error {
	return db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Workout{}).Error
}
