// Package memory keeps users, exercises and exports in process memory.
// It backs the "memory" database driver and the service and API tests.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds every collection behind a single lock.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	exercises []domain.Exercise
	exports   []domain.LogExport
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() repository.UserRepository         { return &userRepository{s} }
func (s *Store) Exercises() repository.ExerciseRepository { return &exerciseRepository{s} }
func (s *Store) Exports() repository.ExportRepository     { return &exportRepository{s} }

type userRepository struct{ s *Store }

func (r *userRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if user.Username == "" {
		return primitive.NilObjectID, repository.ErrInvalidInput
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	r.s.mu.Lock()
	r.s.users = append(r.s.users, *user)
	r.s.mu.Unlock()
	return user.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			user := r.s.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]domain.User, len(r.s.users))
	copy(users, r.s.users)
	return users, nil
}

type exerciseRepository struct{ s *Store }

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if exercise.UserID == primitive.NilObjectID || exercise.Description == "" {
		return primitive.NilObjectID, repository.ErrInvalidInput
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	r.s.mu.Lock()
	r.s.exercises = append(r.s.exercises, *exercise)
	r.s.mu.Unlock()
	return exercise.ID, nil
}

// Find mirrors the mongo query: inclusive date bounds, date ascending, optional cap.
func (r *exerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	exercises := []domain.Exercise{}
	for _, e := range r.s.exercises {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		exercises = append(exercises, e)
	}
	r.s.mu.RUnlock()

	// stable keeps insertion order for equal dates
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Date.Before(exercises[j].Date)
	})
	if filter.Limit > 0 && int64(len(exercises)) > filter.Limit {
		exercises = exercises[:filter.Limit]
	}
	return exercises, nil
}

type exportRepository struct{ s *Store }

func (r *exportRepository) Create(ctx context.Context, export *domain.LogExport) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if export.UserID == primitive.NilObjectID || export.ObjectKey == "" {
		return primitive.NilObjectID, repository.ErrInvalidInput
	}

	export.ID = primitive.NewObjectID()
	export.CreatedAt = time.Now().UTC()

	r.s.mu.Lock()
	r.s.exports = append(r.s.exports, *export)
	r.s.mu.Unlock()
	return export.ID, nil
}

func (r *exportRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.LogExport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.exports {
		if r.s.exports[i].ID == id {
			export := r.s.exports[i]
			return &export, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *exportRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.LogExport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	exports := []domain.LogExport{}
	for i := len(r.s.exports) - 1; i >= 0; i-- {
		if r.s.exports[i].UserID == userID {
			exports = append(exports, r.s.exports[i])
		}
	}
	return exports, nil
}
