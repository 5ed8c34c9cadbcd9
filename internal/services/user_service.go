package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
)

// GetUser retrieves a user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the identity record or refreshes it in place. Called on
// every successfully validated session, so the local row tracks whatever the
// Authorizer instance currently holds.
func UpsertUser(db *gorm.DB, user *models.User) (*models.User, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return GetUser(db, user.ID)
}

// GetUserPreferences returns the stored client preferences, or an empty JSON
// object when the user has never saved any.
func GetUserPreferences(db *gorm.DB, id string) (json.RawMessage, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if len(user.Preferences.JSON) == 0 {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(user.Preferences.JSON), nil
}

// UpdateUserPreferences replaces the stored client preferences wholesale.
func UpdateUserPreferences(db *gorm.DB, id string, prefs json.RawMessage) (json.RawMessage, error) {
	res := db.Model(&models.User{}).
		Where("id = ?", id).
		Update("preferences", models.JSON{JSON: datatypes.JSON(prefs)})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetUserPreferences(db, id)
}
