package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
)

// hitCounter tracks GET traffic per path so tests can observe cache behavior.
type hitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

func newHitCounter() *hitCounter {
	return &hitCounter{hits: map[string]int{}}
}

func (h *hitCounter) inc(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits[path]++
}

func (h *hitCounter) get(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

func newTestServer(t *testing.T, counter *hitCounter) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			counter.inc(r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/workouts" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]models.Workout{{ID: "w-1", Name: "Leg Day"}})
		case r.URL.Path == "/api/workouts" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Workout{ID: "w-2", Name: "Push Day"})
		case r.URL.Path == "/api/workouts/w-1/exercises" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]models.Exercise{{ID: "e-1", Name: "Squat"}})
		case r.URL.Path == "/api/workouts/w-1/exercises" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Exercise{ID: "e-2", Name: "Lunge"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Not found"})
		}
	}))
}

func TestRepeatReadsServeFromCache(t *testing.T) {
	counter := newHitCounter()
	server := newTestServer(t, counter)
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	first, err := c.Workouts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := c.Workouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counter.get("/api/workouts"), "second read must come from the cache")
}

func TestCreateWorkoutInvalidatesWorkoutReads(t *testing.T) {
	counter := newHitCounter()
	server := newTestServer(t, counter)
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Workouts(ctx)
	require.NoError(t, err)

	_, err = c.CreateWorkout(ctx, &schema.WorkoutInput{Name: "Push Day", Date: "2024-05-02"})
	require.NoError(t, err)

	_, err = c.Workouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.get("/api/workouts"), "mutation must drop the cached list")
}

func TestCreateExerciseInvalidatesOnlyThatWorkout(t *testing.T) {
	counter := newHitCounter()
	server := newTestServer(t, counter)
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Workouts(ctx)
	require.NoError(t, err)
	_, err = c.Exercises(ctx, "w-1")
	require.NoError(t, err)

	_, err = c.CreateExercise(ctx, "w-1", &schema.ExerciseInput{Name: "Lunge"})
	require.NoError(t, err)

	_, err = c.Exercises(ctx, "w-1")
	require.NoError(t, err)
	_, err = c.Workouts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, counter.get("/api/workouts/w-1/exercises"), "exercise list refetched")
	assert.Equal(t, 1, counter.get("/api/workouts"), "workout list untouched by an exercise create")
}

func TestMutationFailureNotifiesOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Invalid workout data"})
	}))
	defer server.Close()

	var notices []string
	c := New(server.URL, WithNotifier(func(msg string) { notices = append(notices, msg) }))

	_, err := c.CreateWorkout(context.Background(), &schema.WorkoutInput{Name: ""})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid workout data", apiErr.Message)

	assert.Len(t, notices, 1, "exactly one notification per failed mutation")
	assert.Contains(t, notices[0], "Invalid workout data")
}

func TestSessionCookieAttached(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
			gotCookie = cookie.Value
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Workout{})
	}))
	defer server.Close()

	c := New(server.URL, WithSession("session-token"))
	_, err := c.Workouts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session-token", gotCookie)
}

func TestReadErrorIsNotCached(t *testing.T) {
	fail := true
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "boom"})
			return
		}
		json.NewEncoder(w).Encode([]models.Workout{{ID: "w-1"}})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Workouts(ctx)
	require.Error(t, err)

	fail = false
	workouts, err := c.Workouts(ctx)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
	assert.Equal(t, 2, hits, "errors must not be cached")
}
