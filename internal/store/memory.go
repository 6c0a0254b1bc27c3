// Package store holds the in-memory record collections backing the tracker.
package store

import (
	"context"
	"sync"

	"github.com/martinborzani/Exercise-Tracker-fcc/internal/domain"
)

// UserStore keeps users in memory in creation order. State starts empty at
// process start and is never persisted across restarts.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserStore constructs an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Append implements domain.UserRepository.
func (s *UserStore) Append(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	return nil
}

// List returns all users in creation order.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// FindByID returns the user with the exact id, or nil when absent. Linear
// scan; the expected scale does not warrant an index.
func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// ExerciseStore keeps exercises in memory. Insertion order is the only sort
// order and is semantically meaningful.
type ExerciseStore struct {
	mu        sync.RWMutex
	exercises []domain.Exercise
}

// NewExerciseStore constructs an empty ExerciseStore.
func NewExerciseStore() *ExerciseStore {
	return &ExerciseStore{}
}

// Append implements domain.ExerciseRepository.
func (s *ExerciseStore) Append(ctx context.Context, exercise domain.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exercises = append(s.exercises, exercise)
	return nil
}

// FindByOwner returns the owner's exercises in insertion order.
func (s *ExerciseStore) FindByOwner(ctx context.Context, ownerID string) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Exercise, 0)
	for _, exercise := range s.exercises {
		if exercise.OwnerID == ownerID {
			out = append(out, exercise)
		}
	}
	return out, nil
}
