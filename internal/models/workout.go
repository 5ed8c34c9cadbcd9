package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// DefaultWorkoutColor is applied when a create payload omits the color.
const DefaultWorkoutColor = "#6366F1"

// Workout is one scheduled session on a specific calendar day. A workout is
// owned by exactly one user and is only reachable through queries scoped by
// that user's id.
type Workout struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      string     `gorm:"type:char(36);not null;index:idx_workouts_user_date,priority:1" json:"userId"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Date        types.Date `gorm:"not null;index:idx_workouts_user_date,priority:2" json:"date"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Color       string     `gorm:"size:32;not null;default:'#6366F1'" json:"color"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	Exercises   []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Workout
func (Workout) TableName() string {
	return "workouts"
}

// BeforeCreate assigns the uuid primary key and the color default.
func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Color == "" {
		w.Color = DefaultWorkoutColor
	}
	return nil
}
