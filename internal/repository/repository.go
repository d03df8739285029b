package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInvalidInput = RepositoryError("invalid input")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseFilter narrows a log query. Zero values mean "no bound".
// From and To are inclusive; Limit <= 0 means uncapped.
type ExerciseFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
}

// ExportRepository records log snapshots uploaded to object storage.
type ExportRepository interface {
	Create(ctx context.Context, export *domain.LogExport) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.LogExport, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.LogExport, error)
}
