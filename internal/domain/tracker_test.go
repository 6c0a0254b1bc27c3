package domain_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/martinborzani/Exercise-Tracker-fcc/internal/domain"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/store"
)

func newTracker() (*domain.Tracker, *store.UserStore, *store.ExerciseStore) {
	users := store.NewUserStore()
	exercises := store.NewExerciseStore()
	return domain.NewTracker(users, exercises), users, exercises
}

func TestCreateUserRequiresUsername(t *testing.T) {
	ctx := context.Background()
	tracker, users, _ := newTracker()

	_, err := tracker.CreateUser(ctx, "")
	require.ErrorIs(t, err, domain.ErrUsernameRequired)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "a rejected creation must not grow the store")
}

func TestCreateUserGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		user, err := tracker.CreateUser(ctx, fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)

		_, dup := seen[user.ID]
		require.False(t, dup, "id %s issued twice", user.ID)
		seen[user.ID] = struct{}{}
	}
}

func TestCreateUserAllowsDuplicateUsernames(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()

	first, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)
	second, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestRecordExerciseUnknownUser(t *testing.T) {
	tracker, _, _ := newTracker()

	_, _, err := tracker.RecordExercise(context.Background(), domain.RecordExerciseInput{
		UserID:      "missing",
		Description: "run",
		Duration:    "30",
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecordExerciseRequiresDescriptionAndDuration(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	cases := []domain.RecordExerciseInput{
		{UserID: user.ID, Description: "", Duration: "30"},
		{UserID: user.ID, Description: "run", Duration: ""},
		{UserID: user.ID},
	}
	for _, input := range cases {
		_, _, err := tracker.RecordExercise(ctx, input)
		require.ErrorIs(t, err, domain.ErrExerciseFieldsRequired)
	}
}

func TestRecordExerciseRejectsNonNumericDuration(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	_, _, err = tracker.RecordExercise(ctx, domain.RecordExerciseInput{
		UserID:      user.ID,
		Description: "run",
		Duration:    "thirty",
	})
	require.ErrorIs(t, err, domain.ErrDurationNotNumeric)
}

func TestRecordExerciseInvalidDateDoesNotAppend(t *testing.T) {
	ctx := context.Background()
	tracker, _, exercises := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	_, _, err = tracker.RecordExercise(ctx, domain.RecordExerciseInput{
		UserID:      user.ID,
		Description: "run",
		Duration:    "30",
		Date:        "not a date",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDate)

	stored, err := exercises.FindByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestRecordExerciseWithSuppliedDate(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	owner, exercise, err := tracker.RecordExercise(ctx, domain.RecordExerciseInput{
		UserID:      user.ID,
		Description: "run",
		Duration:    "30",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, owner.ID)
	require.Equal(t, 30.0, exercise.Duration)
	require.Equal(t, 2024, exercise.Date.Year())
	require.Equal(t, time.January, exercise.Date.Month())
	require.Equal(t, 1, exercise.Date.Day())
}

func TestRecordExerciseDefaultsDateToNow(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	_, exercise, err := tracker.RecordExercise(ctx, domain.RecordExerciseInput{
		UserID:      user.ID,
		Description: "run",
		Duration:    "30",
	})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), exercise.Date, time.Second)
}

func TestRecordExerciseAcceptsFractionalDuration(t *testing.T) {
	ctx := context.Background()
	tracker, _, _ := newTracker()
	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	_, exercise, err := tracker.RecordExercise(ctx, domain.RecordExerciseInput{
		UserID:      user.ID,
		Description: "stretch",
		Duration:    "12.5",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)
	require.Equal(t, 12.5, exercise.Duration)
}

// seedLog creates a user with five exercises dated Jan 1 through Jan 5 2024.
func seedLog(t *testing.T, tracker *domain.Tracker) *domain.User {
	t.Helper()
	ctx := context.Background()

	user, err := tracker.CreateUser(ctx, "fcc")
	require.NoError(t, err)

	for day := 1; day <= 5; day++ {
		_, _, err := tracker.RecordExercise(ctx, domain.RecordExerciseInput{
			UserID:      user.ID,
			Description: fmt.Sprintf("run-%d", day),
			Duration:    "30",
			Date:        fmt.Sprintf("2024-01-0%d", day),
		})
		require.NoError(t, err)
	}
	return user
}

func TestLogUnknownUser(t *testing.T) {
	tracker, _, _ := newTracker()

	_, err := tracker.Log(context.Background(), domain.LogQuery{UserID: "missing"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogReturnsAllInInsertionOrder(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)

	result, err := tracker.Log(context.Background(), domain.LogQuery{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, 5, result.Count)
	require.Len(t, result.Entries, 5)
	require.Equal(t, "run-1", result.Entries[0].Description)
	require.Equal(t, "run-5", result.Entries[4].Description)
}

func TestLogDateRangeFilter(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)

	result, err := tracker.Log(context.Background(), domain.LogQuery{
		UserID: user.ID,
		From:   "2024-01-02",
		To:     "2024-01-04",
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.Count)
	require.Len(t, result.Entries, 3)
	require.Equal(t, "run-2", result.Entries[0].Description)
	require.Equal(t, "run-4", result.Entries[2].Description)
}

func TestLogCountIgnoresLimit(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)

	result, err := tracker.Log(context.Background(), domain.LogQuery{
		UserID: user.ID,
		Limit:  "2",
	})
	require.NoError(t, err)
	require.Equal(t, 5, result.Count)
	require.Len(t, result.Entries, 2)
	require.Equal(t, "run-1", result.Entries[0].Description)
	require.Equal(t, "run-2", result.Entries[1].Description)
}

func TestLogInvalidBoundsDegradeToAbsent(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)
	ctx := context.Background()

	plain, err := tracker.Log(ctx, domain.LogQuery{UserID: user.ID})
	require.NoError(t, err)

	garbled, err := tracker.Log(ctx, domain.LogQuery{
		UserID: user.ID,
		From:   "definitely not a date",
		To:     "also garbage",
	})
	require.NoError(t, err)
	require.Equal(t, plain.Count, garbled.Count)
	require.Equal(t, plain.Entries, garbled.Entries)
}

func TestLogIgnoresUnusableLimit(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)
	ctx := context.Background()

	for _, limit := range []string{"abc", "-1", "0", ""} {
		result, err := tracker.Log(ctx, domain.LogQuery{UserID: user.ID, Limit: limit})
		require.NoError(t, err)
		require.Len(t, result.Entries, 5, "limit %q should be ignored", limit)
	}
}

func TestLogTruncatesFractionalLimit(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)

	result, err := tracker.Log(context.Background(), domain.LogQuery{
		UserID: user.ID,
		Limit:  "2.9",
	})
	require.NoError(t, err)
	require.Equal(t, 5, result.Count)
	require.Len(t, result.Entries, 2)
}

func TestLogFilterThenLimit(t *testing.T) {
	tracker, _, _ := newTracker()
	user := seedLog(t, tracker)

	result, err := tracker.Log(context.Background(), domain.LogQuery{
		UserID: user.ID,
		From:   "2024-01-02",
		Limit:  "2",
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.Count)
	require.Len(t, result.Entries, 2)
	require.Equal(t, "run-2", result.Entries[0].Description)
	require.Equal(t, "run-3", result.Entries[1].Description)
}
