// Package api exposes the HTTP handlers for the exercise tracker.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martinborzani/Exercise-Tracker-fcc/internal/dates"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/domain"
	"github.com/martinborzani/Exercise-Tracker-fcc/internal/observability"
)

// Handler coordinates HTTP requests with the tracker service.
type Handler struct {
	tracker *domain.Tracker
}

// NewHandler builds a Handler.
func NewHandler(tracker *domain.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeUserPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	user, err := h.tracker.CreateUser(r.Context(), payload.Username)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	observability.RecordUserCreated()
	writeJSON(w, http.StatusOK, toUserView(*user))
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}
	writeJSON(w, http.StatusOK, views)
}

// AddExercise handles POST /api/users/{id}/exercises.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeExercisePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	user, exercise, err := h.tracker.RecordExercise(r.Context(), domain.RecordExerciseInput{
		UserID:      chi.URLParam(r, "id"),
		Description: payload.Description,
		Duration:    payload.Duration,
		Date:        payload.Date,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	observability.RecordExerciseRecorded()
	writeJSON(w, http.StatusOK, ExerciseView{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        dates.Format(exercise.Date),
		ID:          user.ID,
	})
}

// GetLog handles GET /api/users/{id}/logs.
func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	result, err := h.tracker.Log(r.Context(), domain.LogQuery{
		UserID: chi.URLParam(r, "id"),
		From:   params.Get("from"),
		To:     params.Get("to"),
		Limit:  params.Get("limit"),
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	entries := make([]LogEntryView, 0, len(result.Entries))
	for _, exercise := range result.Entries {
		entries = append(entries, LogEntryView{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        dates.Format(exercise.Date),
		})
	}

	observability.RecordLogQuery()
	writeJSON(w, http.StatusOK, LogView{
		Username: result.User.Username,
		Count:    result.Count,
		ID:       result.User.ID,
		Log:      entries,
	})
}

// writeDomainError maps tracker errors onto the wire contract. An unparseable
// exercise date is reported with a 200 status; clients depend on that quirk.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		observability.RecordInvalidDate()
		writeJSON(w, http.StatusOK, ErrorView{Error: "Invalid Date"})
	case errors.Is(err, domain.ErrUsernameRequired),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrExerciseFieldsRequired),
		errors.Is(err, domain.ErrDurationNotNumeric):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// UserView is the wire shape of a user. The id travels as _id.
type UserView struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseView is the response body for a recorded exercise.
type ExerciseView struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
	ID          string  `json:"_id"`
}

// LogEntryView is a single rendered exercise inside a log.
type LogEntryView struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogView is the response body for a log query. Count is the date-filtered
// total before the limit, so it can exceed len(Log).
type LogView struct {
	Username string         `json:"username"`
	Count    int            `json:"count"`
	ID       string         `json:"_id"`
	Log      []LogEntryView `json:"log"`
}

// ErrorView is the uniform error body.
type ErrorView struct {
	Error string `json:"error"`
}

func toUserView(user domain.User) UserView {
	return UserView{Username: user.Username, ID: user.ID}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorView{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
