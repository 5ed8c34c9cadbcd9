package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
)

// GetExercisesByWorkout returns a workout's exercises in sequence order.
// Ownership is not re-checked here: callers hold a workoutId they obtained
// through an owner-scoped workout query.
func GetExercisesByWorkout(db *gorm.DB, workoutID string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := db.Where("workout_id = ?", workoutID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetExerciseByID retrieves a single exercise.
func GetExerciseByID(db *gorm.DB, id string) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := db.First(&exercise, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// CreateExercise persists a validated create payload under the given workout.
// Omitted counters fall back to the schema defaults; an omitted order places
// the exercise at the end of the workout's list.
func CreateExercise(db *gorm.DB, workoutID string, input *schema.ExerciseInput) (*models.Exercise, error) {
	exercise := models.Exercise{
		WorkoutID:    workoutID,
		Name:         input.Name,
		Description:  input.Description,
		Type:         input.Type,
		Sets:         1,
		Reps:         1,
		MaxCount:     1,
		RestDuration: 60,
	}
	if input.Sets != nil {
		exercise.Sets = input.Sets.Int()
	}
	if input.Reps != nil {
		exercise.Reps = input.Reps.Int()
	}
	if input.MaxCount != nil {
		exercise.MaxCount = input.MaxCount.Int()
	}
	if input.RestDuration != nil {
		exercise.RestDuration = input.RestDuration.Int()
	}

	if input.Order != nil {
		exercise.Order = input.Order.Int()
	} else {
		var count int64
		if err := db.Model(&models.Exercise{}).Where("workout_id = ?", workoutID).Count(&count).Error; err != nil {
			return nil, err
		}
		exercise.Order = int(count)
	}

	if err := db.Create(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// UpdateExercise merges the provided fields and stamps updated_at. The query
// is keyed by exercise id alone; the owner check happened when the caller
// resolved the parent workout.
func UpdateExercise(db *gorm.DB, id string, update *schema.ExerciseUpdate) (*models.Exercise, error) {
	updates := update.Updates()
	updates["updated_at"] = time.Now().UTC()

	res := db.Model(&models.Exercise{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetExerciseByID(db, id)
}

// DeleteExercise removes a single exercise by id alone, same trust boundary
// as UpdateExercise.
func DeleteExercise(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Exercise{}).Error
}
