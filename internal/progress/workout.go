package progress

import (
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
)

// WorkoutCompletionPolicy selects how a workout's completed flag is managed.
type WorkoutCompletionPolicy int

const (
	// WorkoutCompletionManual: the user marks the workout complete
	// explicitly; exercise state is informational.
	WorkoutCompletionManual WorkoutCompletionPolicy = iota
	// WorkoutCompletionDerived: the workout is complete exactly when every
	// exercise in it is complete.
	WorkoutCompletionDerived
)

// Ratio returns completed/total clamped to [0,1]. A workout with no items
// counts as zero progress, not done.
func Ratio(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}
	return float64(completed) / float64(total)
}

// WorkoutProgress returns the fraction of the workout's exercises that are
// complete, using the completed flag as the authoritative representation.
func WorkoutProgress(exercises []models.Exercise) float64 {
	done := 0
	for _, ex := range exercises {
		if ex.Completed {
			done++
		}
	}
	return Ratio(done, len(exercises))
}

// AllExercisesCompleted reports whether a derived-policy workout should be
// flagged complete. False for an empty workout.
func AllExercisesCompleted(exercises []models.Exercise) bool {
	if len(exercises) == 0 {
		return false
	}
	for _, ex := range exercises {
		if !ex.Completed {
			return false
		}
	}
	return true
}
