package services_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/services"
)

func TestUpsertUserInsertsThenRefreshes(t *testing.T) {
	db := setupTestDB(t)

	email := "alice@example.com"
	first := "Alice"
	user, err := services.UpsertUser(db, &models.User{
		ID:        "user-1",
		Email:     &email,
		FirstName: &first,
	})
	if err != nil {
		t.Fatalf("UpsertUser insert failed: %v", err)
	}
	if user.Email == nil || *user.Email != email {
		t.Errorf("Expected email %s, got %v", email, user.Email)
	}

	// Second upsert with fresh identity data updates the row in place.
	newEmail := "alice.new@example.com"
	user, err = services.UpsertUser(db, &models.User{
		ID:    "user-1",
		Email: &newEmail,
	})
	if err != nil {
		t.Fatalf("UpsertUser refresh failed: %v", err)
	}
	if user.Email == nil || *user.Email != newEmail {
		t.Errorf("Expected refreshed email %s, got %v", newEmail, user.Email)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single user row, got %d", count)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetUser(db, "no-such-id")
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserPreferencesDefaultToEmptyObject(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	prefs, err := services.GetUserPreferences(db, user.ID)
	if err != nil {
		t.Fatalf("GetUserPreferences failed: %v", err)
	}
	if string(prefs) != "{}" {
		t.Errorf("Expected empty object, got %s", string(prefs))
	}
}

func TestUpdateUserPreferencesRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "user-1")

	in := json.RawMessage(`{"weekStartsOn":"monday","restSound":true}`)
	prefs, err := services.UpdateUserPreferences(db, user.ID, in)
	if err != nil {
		t.Fatalf("UpdateUserPreferences failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(prefs, &got); err != nil {
		t.Fatalf("Stored preferences are not valid JSON: %v", err)
	}
	if got["weekStartsOn"] != "monday" {
		t.Errorf("Expected weekStartsOn monday, got %v", got["weekStartsOn"])
	}
	if got["restSound"] != true {
		t.Errorf("Expected restSound true, got %v", got["restSound"])
	}
}

func TestUpdateUserPreferencesUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.UpdateUserPreferences(db, "no-such-id", json.RawMessage(`{}`))
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
