// Package client is the data-fetching layer used by the UI components. GET
// responses are cached under their logical resource path; every mutation
// drops the affected paths so the next read refetches authoritative state.
// There is no optimistic update and no retry: a failed mutation surfaces as
// a single notification and the server remains the source of truth.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/middleware"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/schema"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/types"
)

// Notifier receives one-shot user-facing failure notices. No retries follow.
type Notifier func(message string)

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client issues requests to the workout API with a path-keyed response cache.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *gocache.Cache
	session string
	notify  Notifier
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSession sets the Authorizer session cookie attached to every request.
func WithSession(cookie string) Option {
	return func(c *Client) { c.session = cookie }
}

// WithNotifier sets the mutation-failure notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notify = n }
}

// New builds a Client against the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches a path, serving repeats from the cache.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if raw, ok := c.cache.Get(path); ok {
		return json.Unmarshal(raw.([]byte), out)
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	c.cache.SetDefault(path, body)
	return json.Unmarshal(body, out)
}

// mutate issues a write and invalidates the affected cache prefixes. On
// failure the notifier fires once and the error is returned as-is.
func (c *Client) mutate(ctx context.Context, method, path string, payload, out interface{}, invalidate ...string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	respBody, err := c.do(ctx, method, path, body)
	if err != nil {
		if c.notify != nil {
			c.notify(fmt.Sprintf("%s %s failed: %v", method, path, err))
		}
		return err
	}

	for _, prefix := range invalidate {
		c.invalidatePrefix(prefix)
	}

	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: c.session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return nil, apiErr
	}

	return respBody, nil
}

// invalidatePrefix drops every cached path at or under the prefix.
func (c *Client) invalidatePrefix(prefix string) {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
	logrus.WithField("prefix", prefix).Debug("cache invalidated")
}

// CurrentUser fetches the identity record for the active session.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/auth/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Workouts lists the caller's workouts, newest day first.
func (c *Client) Workouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := c.get(ctx, "/api/workouts", &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// WorkoutsByDate lists the caller's workouts for one calendar day.
func (c *Client) WorkoutsByDate(ctx context.Context, date types.Date) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := c.get(ctx, "/api/workouts/date/"+date.String(), &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Workout fetches a single workout.
func (c *Client) Workout(ctx context.Context, id string) (*models.Workout, error) {
	var workout models.Workout
	if err := c.get(ctx, "/api/workouts/"+id, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// CreateWorkout persists a new workout and invalidates the workout lists.
func (c *Client) CreateWorkout(ctx context.Context, input *schema.WorkoutInput) (*models.Workout, error) {
	var workout models.Workout
	err := c.mutate(ctx, http.MethodPost, "/api/workouts", input, &workout,
		"/api/workouts")
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkout applies a partial update and invalidates the workout paths.
func (c *Client) UpdateWorkout(ctx context.Context, id string, update *schema.WorkoutUpdate) (*models.Workout, error) {
	var workout models.Workout
	err := c.mutate(ctx, http.MethodPatch, "/api/workouts/"+id, update, &workout,
		"/api/workouts")
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// DeleteWorkout removes a workout (and, server-side, its exercises).
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/workouts/"+id, nil, nil,
		"/api/workouts")
}

// Exercises lists a workout's exercises in sequence order.
func (c *Client) Exercises(ctx context.Context, workoutID string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.get(ctx, "/api/workouts/"+workoutID+"/exercises", &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// CreateExercise appends an exercise to a workout.
func (c *Client) CreateExercise(ctx context.Context, workoutID string, input *schema.ExerciseInput) (*models.Exercise, error) {
	var exercise models.Exercise
	err := c.mutate(ctx, http.MethodPost, "/api/workouts/"+workoutID+"/exercises", input, &exercise,
		"/api/workouts/"+workoutID)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// UpdateExercise applies a partial update to one exercise. The exercise's
// workout lists are dropped wholesale since the parent id isn't in the path.
func (c *Client) UpdateExercise(ctx context.Context, id string, update *schema.ExerciseUpdate) (*models.Exercise, error) {
	var exercise models.Exercise
	err := c.mutate(ctx, http.MethodPatch, "/api/exercises/"+id, update, &exercise,
		"/api/workouts")
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// DeleteExercise removes one exercise.
func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/exercises/"+id, nil, nil,
		"/api/workouts")
}

// Preferences fetches the stored client preferences.
func (c *Client) Preferences(ctx context.Context) (json.RawMessage, error) {
	var prefs json.RawMessage
	if err := c.get(ctx, "/api/auth/user/preferences", &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// UpdatePreferences replaces the stored client preferences.
func (c *Client) UpdatePreferences(ctx context.Context, prefs json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.mutate(ctx, http.MethodPut, "/api/auth/user/preferences", prefs, &out,
		"/api/auth/user")
	if err != nil {
		return nil, err
	}
	return out, nil
}
