// Package calendar buckets workouts by exact calendar day and backs the
// month-grid view: a month of padded weeks, one-month paging, and per-day
// workout lookup.
package calendar

import (
	"time"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// Bucket maps "yyyy-MM-dd" day keys to the workouts scheduled on that day.
type Bucket map[string][]models.Workout

// BucketByDate groups workouts by exact day-string equality. Input order is
// preserved within each day.
func BucketByDate(workouts []models.Workout) Bucket {
	bucket := make(Bucket)
	for _, w := range workouts {
		key := w.Date.String()
		bucket[key] = append(bucket[key], w)
	}
	return bucket
}

// WorkoutsOn returns the workouts bucketed under the given day.
func (b Bucket) WorkoutsOn(date types.Date) []models.Workout {
	return b[date.String()]
}

// Day is one cell of the month grid.
type Day struct {
	Date types.Date
	// InMonth marks days belonging to the displayed month, as opposed to
	// the leading/trailing padding days that square the grid off.
	InMonth bool
}

// Month identifies one displayed month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing the given day.
func MonthOf(date types.Date) Month {
	t := date.Time()
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month.
func (m Month) Next() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()
}

// Contains reports whether the day falls inside the month.
func (m Month) Contains(date types.Date) bool {
	t := date.Time()
	return t.Year() == m.Year && t.Month() == m.Month
}

// Grid returns the month's day cells padded with the surrounding days so the
// result is whole weeks, starting on the given weekday.
func (m Month) Grid(weekStart time.Weekday) []Day {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)

	// Walk back to the week start.
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	cursor := first.AddDate(0, 0, -lead)

	cells := lead + m.Days()
	if rem := cells % 7; rem != 0 {
		cells += 7 - rem
	}

	grid := make([]Day, 0, cells)
	for i := 0; i < cells; i++ {
		grid = append(grid, Day{
			Date:    types.NewDate(cursor),
			InMonth: cursor.Month() == m.Month && cursor.Year() == m.Year,
		})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return grid
}
