package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field errors under their json names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WorkoutInput is the create payload for a workout. The owning user id is
// injected server-side, never taken from the body.
type WorkoutInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
}

// WorkoutUpdate is the partial-update payload for a workout. Only fields
// present in the body are applied.
type WorkoutUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Completed   *bool   `json:"completed"`
}

// Updates converts the payload into a GORM updates map. A malformed date
// surfaces as an error rather than a zero value.
func (u *WorkoutUpdate) Updates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Date != nil {
		d, err := types.ParseDate(*u.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = d
	}
	if u.Color != nil {
		updates["color"] = *u.Color
	}
	if u.Completed != nil {
		updates["completed"] = *u.Completed
	}
	return updates, nil
}

// ExerciseInput is the create payload for an exercise. Counter fields accept
// both JSON numbers and numeric strings since they originate in form inputs.
type ExerciseInput struct {
	Name         string          `json:"name" validate:"required"`
	Description  *string         `json:"description"`
	Type         string          `json:"type" validate:"omitempty,oneof=strength cardio core other"`
	Sets         *types.FlexInt `json:"sets" validate:"omitempty,gte=1"`
	Reps         *types.FlexInt `json:"reps" validate:"omitempty,gte=1"`
	RestDuration *types.FlexInt `json:"restDuration" validate:"omitempty,gte=0"`
	MaxCount     *types.FlexInt `json:"maxCount" validate:"omitempty,gte=1"`
	Order        *types.FlexInt `json:"order" validate:"omitempty,gte=0"`
}

// ExerciseUpdate is the partial-update payload for an exercise.
type ExerciseUpdate struct {
	Name         *string        `json:"name" validate:"omitempty,min=1"`
	Description  *string        `json:"description"`
	Type         *string        `json:"type" validate:"omitempty,oneof=strength cardio core other"`
	Sets         *types.FlexInt `json:"sets" validate:"omitempty,gte=1"`
	Reps         *types.FlexInt `json:"reps" validate:"omitempty,gte=1"`
	CurrentCount *types.FlexInt `json:"currentCount" validate:"omitempty,gte=0"`
	MaxCount     *types.FlexInt `json:"maxCount" validate:"omitempty,gte=1"`
	RestDuration *types.FlexInt `json:"restDuration" validate:"omitempty,gte=0"`
	Completed    *bool          `json:"completed"`
	Order        *types.FlexInt `json:"order" validate:"omitempty,gte=0"`
}

// Updates converts the payload into a GORM updates map.
func (u *ExerciseUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Type != nil {
		updates["type"] = *u.Type
	}
	if u.Sets != nil {
		updates["sets"] = u.Sets.Int()
	}
	if u.Reps != nil {
		updates["reps"] = u.Reps.Int()
	}
	if u.CurrentCount != nil {
		updates["current_count"] = u.CurrentCount.Int()
	}
	if u.MaxCount != nil {
		updates["max_count"] = u.MaxCount.Int()
	}
	if u.RestDuration != nil {
		updates["rest_duration"] = u.RestDuration.Int()
	}
	if u.Completed != nil {
		updates["completed"] = *u.Completed
	}
	if u.Order != nil {
		updates["order"] = u.Order.Int()
	}
	return updates
}

// Validate checks a payload struct and returns one entry per failed rule,
// or nil when the payload is valid.
func Validate(v interface{}) []types.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]types.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, types.FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fieldMessage(fe),
			})
		}
		return out
	}

	return []types.FieldError{{Field: "", Rule: "struct", Message: err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a calendar day in yyyy-MM-dd form", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", fe.Field())
	}
	return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
}
