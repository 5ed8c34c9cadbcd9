package models

import (
	"time"
)

// User mirrors the identity record managed by the Authorizer instance.
// Rows are upserted on every successfully validated session and are never
// deleted by the application.
type User struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email           *string   `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName       *string   `gorm:"size:255" json:"firstName"`
	LastName        *string   `gorm:"size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"size:512" json:"profileImageUrl"`
	Preferences     JSON      `json:"preferences"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Workouts        []Workout `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
