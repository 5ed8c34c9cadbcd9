package schema

import (
	"testing"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

func fieldRules(errs []types.FieldError) map[string]string {
	out := map[string]string{}
	for _, fe := range errs {
		out[fe.Field] = fe.Rule
	}
	return out
}

func TestWorkoutInputValid(t *testing.T) {
	input := WorkoutInput{
		Name:  "Leg Day",
		Date:  "2024-05-01",
		Color: "#FF0000",
	}
	if errs := Validate(&input); errs != nil {
		t.Errorf("Expected a valid payload, got %v", errs)
	}
}

func TestWorkoutInputFieldErrorsUseJSONNames(t *testing.T) {
	input := WorkoutInput{Date: "05/01/2024"}

	errs := Validate(&input)
	if errs == nil {
		t.Fatal("Expected validation errors")
	}

	rules := fieldRules(errs)
	if rules["name"] != "required" {
		t.Errorf("Expected required error on name, got %v", rules)
	}
	if rules["date"] != "datetime" {
		t.Errorf("Expected datetime error on date, got %v", rules)
	}
}

func TestWorkoutInputColor(t *testing.T) {
	input := WorkoutInput{Name: "Leg Day", Date: "2024-05-01", Color: "red"}

	errs := Validate(&input)
	if errs == nil {
		t.Fatal("Expected a hexcolor error")
	}
	if fieldRules(errs)["color"] != "hexcolor" {
		t.Errorf("Expected hexcolor rule on color, got %v", errs)
	}

	// Omitting the color entirely is fine; the model applies the default.
	input.Color = ""
	if errs := Validate(&input); errs != nil {
		t.Errorf("Expected omitted color to pass, got %v", errs)
	}
}

func TestExerciseInputRules(t *testing.T) {
	zero := types.FlexInt(0)
	input := ExerciseInput{
		Name: "Squat",
		Type: "yoga",
		Sets: &zero,
	}

	errs := Validate(&input)
	if errs == nil {
		t.Fatal("Expected validation errors")
	}

	rules := fieldRules(errs)
	if rules["type"] != "oneof" {
		t.Errorf("Expected oneof error on type, got %v", rules)
	}
	if rules["sets"] != "gte" {
		t.Errorf("Expected gte error on sets, got %v", rules)
	}

	// Rest duration of zero is allowed: back-to-back sets.
	rest := types.FlexInt(0)
	valid := ExerciseInput{Name: "Squat", RestDuration: &rest}
	if errs := Validate(&valid); errs != nil {
		t.Errorf("Expected zero rest duration to pass, got %v", errs)
	}
}

func TestWorkoutUpdateUpdatesMap(t *testing.T) {
	name := "Push Day"
	date := "2024-05-02"
	completed := true
	update := WorkoutUpdate{
		Name:      &name,
		Date:      &date,
		Completed: &completed,
	}

	updates, err := update.Updates()
	if err != nil {
		t.Fatalf("Failed to build updates map: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("Expected 3 entries, got %d: %v", len(updates), updates)
	}
	if updates["name"] != name {
		t.Errorf("Expected name %q, got %v", name, updates["name"])
	}
	if updates["completed"] != true {
		t.Errorf("Expected completed true, got %v", updates["completed"])
	}
	d, ok := updates["date"].(types.Date)
	if !ok || d.String() != date {
		t.Errorf("Expected parsed date %s, got %v", date, updates["date"])
	}
}

func TestWorkoutUpdateUpdatesMapRejectsMalformedDate(t *testing.T) {
	date := "May 2nd"
	update := WorkoutUpdate{Date: &date}

	if _, err := update.Updates(); err == nil {
		t.Error("Expected an error for an unparseable date")
	}
}

func TestExerciseUpdateUpdatesMapOmitsNilFields(t *testing.T) {
	count := types.FlexInt(2)
	update := ExerciseUpdate{CurrentCount: &count}

	updates := update.Updates()
	if len(updates) != 1 {
		t.Fatalf("Expected only the provided field, got %v", updates)
	}
	if updates["current_count"] != 2 {
		t.Errorf("Expected current_count 2, got %v", updates["current_count"])
	}
}

func TestEmptyUpdatePassesValidation(t *testing.T) {
	if errs := Validate(&WorkoutUpdate{}); errs != nil {
		t.Errorf("Expected empty workout update to pass, got %v", errs)
	}
	if errs := Validate(&ExerciseUpdate{}); errs != nil {
		t.Errorf("Expected empty exercise update to pass, got %v", errs)
	}
}
