package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise types. "other" covers anything the fixed categories don't.
const (
	ExerciseTypeStrength = "strength"
	ExerciseTypeCardio   = "cardio"
	ExerciseTypeCore     = "core"
	ExerciseTypeOther    = "other"
)

// Exercise is one movement inside a workout, defined by target sets/reps and
// the rest duration between sets. CurrentCount/MaxCount carry the count-based
// progress used by the counter view; Completed carries the set-logging view's
// result. The two representations are intentionally not reconciled server-side.
type Exercise struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	WorkoutID    string    `gorm:"type:char(36);not null;index" json:"workoutId"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	Type         string    `gorm:"size:32;not null;default:'strength'" json:"type"`
	Sets         int       `gorm:"not null;default:1" json:"sets"`
	Reps         int       `gorm:"not null;default:1" json:"reps"`
	CurrentCount int       `gorm:"not null;default:0" json:"currentCount"`
	MaxCount     int       `gorm:"not null;default:1" json:"maxCount"`
	RestDuration int       `gorm:"not null;default:60" json:"restDuration"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	Order        int       `gorm:"column:order;not null;default:0" json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Workout      *Workout  `gorm:"foreignKey:WorkoutID" json:"-"`
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}

// BeforeCreate assigns the uuid primary key.
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Type == "" {
		e.Type = ExerciseTypeStrength
	}
	return nil
}
