// Package domain defines the business logic for the exercise tracker.
package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/martinborzani/Exercise-Tracker-fcc/internal/dates"
)

var (
	// ErrUsernameRequired is returned when a user is created without a username.
	ErrUsernameRequired = errors.New("username is required")
	// ErrUserNotFound is returned when a user id cannot be located.
	ErrUserNotFound = errors.New("User not found")
	// ErrExerciseFieldsRequired is returned when description or duration is missing.
	ErrExerciseFieldsRequired = errors.New("description and duration are required")
	// ErrDurationNotNumeric is returned when duration does not parse as a number.
	ErrDurationNotNumeric = errors.New("duration must be a number")
	// ErrInvalidDate is returned when a supplied exercise date cannot be parsed.
	ErrInvalidDate = dates.ErrInvalidDate
)

// User is a registered account. Users are never mutated or deleted.
type User struct {
	ID       string
	Username string
}

// Exercise is a single logged workout owned by a user.
type Exercise struct {
	OwnerID     string
	Description string
	Duration    float64
	Date        time.Time
}

// UserRepository captures storage operations for users.
type UserRepository interface {
	Append(ctx context.Context, user User) error
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// ExerciseRepository captures storage operations for exercises.
// Implementations perform no validation; callers own it.
type ExerciseRepository interface {
	Append(ctx context.Context, exercise Exercise) error
	FindByOwner(ctx context.Context, ownerID string) ([]Exercise, error)
}

// Tracker orchestrates user and exercise workflows.
type Tracker struct {
	users     UserRepository
	exercises ExerciseRepository
}

// NewTracker constructs a Tracker.
func NewTracker(users UserRepository, exercises ExerciseRepository) *Tracker {
	return &Tracker{users: users, exercises: exercises}
}

// CreateUser registers a new user with a freshly generated id.
func (t *Tracker) CreateUser(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := User{
		ID:       uuid.NewString(),
		Username: username,
	}
	if err := t.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users in creation order.
func (t *Tracker) ListUsers(ctx context.Context) ([]User, error) {
	return t.users.List(ctx)
}

// RecordExerciseInput carries the raw payload from the API layer. Duration and
// Date stay textual here; the tracker owns coercion and validation.
type RecordExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// RecordExercise validates the input, resolves its date and appends the
// exercise. A supplied but unparseable date fails hard with ErrInvalidDate;
// an absent date defaults to now.
func (t *Tracker) RecordExercise(ctx context.Context, input RecordExerciseInput) (*User, *Exercise, error) {
	user, err := t.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if input.Description == "" || input.Duration == "" {
		return nil, nil, ErrExerciseFieldsRequired
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(input.Duration), 64)
	if err != nil {
		return nil, nil, ErrDurationNotNumeric
	}

	date, err := dates.Normalize(input.Date)
	if err != nil {
		return nil, nil, err
	}

	exercise := Exercise{
		OwnerID:     user.ID,
		Description: input.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := t.exercises.Append(ctx, exercise); err != nil {
		return nil, nil, err
	}
	return user, &exercise, nil
}

// LogQuery carries the raw query parameters for a log request.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// LogResult is the outcome of a log query. Count reflects the date-filtered
// total before the limit is applied, so it can exceed len(Entries).
type LogResult struct {
	User    User
	Count   int
	Entries []Exercise
}

// Log filters and truncates a user's exercise history.
//
// Unlike exercise creation, an unparseable from/to degrades silently to "no
// filter", and a non-numeric or non-positive limit is ignored. Both fallbacks
// are part of the observable contract.
func (t *Tracker) Log(ctx context.Context, query LogQuery) (*LogResult, error) {
	user, err := t.users.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	from := normalizeBound(query.From)
	to := normalizeBound(query.To)

	all, err := t.exercises.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	filtered := make([]Exercise, 0, len(all))
	for _, exercise := range all {
		if from != nil && exercise.Date.Before(*from) {
			continue
		}
		if to != nil && exercise.Date.After(*to) {
			continue
		}
		filtered = append(filtered, exercise)
	}

	count := len(filtered)

	if n, ok := parseLimit(query.Limit); ok && n < len(filtered) {
		filtered = filtered[:n]
	}

	return &LogResult{
		User:    *user,
		Count:   count,
		Entries: filtered,
	}, nil
}

// normalizeBound resolves an optional range bound. Absent or unparseable
// input yields no bound.
func normalizeBound(input string) *time.Time {
	if input == "" {
		return nil
	}
	parsed, err := dates.Normalize(input)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseLimit accepts any positive number and truncates it toward zero.
func parseLimit(input string) (int, bool) {
	if input == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return int(parsed), true
}
