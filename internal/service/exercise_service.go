package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"math"
	"strconv"
	"strings"
	"time"
)

// NewExercise is the raw input for logging an exercise.
// Duration and Date arrive as text and are coerced here.
type NewExercise struct {
	Description string
	Duration    string
	Date        string
}

// LogQuery holds the optional, unparsed log filters.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// ExerciseService records exercises and builds user logs.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID string, input NewExercise) (*domain.User, *domain.Exercise, error)
	GetLog(ctx context.Context, userID string, query LogQuery) (*domain.ExerciseLog, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// AddExercise validates input, checks the user exists and persists the exercise.
func (s *exerciseService) AddExercise(ctx context.Context, userID string, input NewExercise) (*domain.User, *domain.Exercise, error) {
	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, nil, validationError("description is required")
	}

	duration, err := parseDuration(input.Duration)
	if err != nil {
		return nil, nil, err
	}

	// Only an absent date defaults to today; whitespace is a bad date.
	date := domain.TruncateDay(s.now())
	if input.Date != "" {
		if date, err = domain.ParseDate(input.Date); err != nil {
			return nil, nil, validationError("invalid date %q", input.Date)
		}
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = id

	return user, exercise, nil
}

// GetLog validates the filters before touching the store, then returns
// the user's exercises within [from, to], capped at limit.
func (s *exerciseService) GetLog(ctx context.Context, userID string, query LogQuery) (*domain.ExerciseLog, error) {
	filter, err := parseLogQuery(query)
	if err != nil {
		return nil, err
	}

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	filter.UserID = user.ID

	exercises, err := s.exerciseRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	return &domain.ExerciseLog{User: user, Entries: exercises}, nil
}

func parseLogQuery(query LogQuery) (repository.ExerciseFilter, error) {
	var filter repository.ExerciseFilter

	if v := strings.TrimSpace(query.From); v != "" {
		from, err := domain.ParseDate(v)
		if err != nil {
			return filter, validationError("invalid from date %q", query.From)
		}
		filter.From = &from
	}
	if v := strings.TrimSpace(query.To); v != "" {
		to, err := domain.ParseDate(v)
		if err != nil {
			return filter, validationError("invalid to date %q", query.To)
		}
		filter.To = &to
	}
	if v := strings.TrimSpace(query.Limit); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 0 {
			return filter, validationError("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}

// parseDuration accepts whole minutes written as "30" or "30.0".
func parseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, validationError("duration is required")
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
			return 0, validationError("duration must be a whole number of minutes")
		}
		minutes = int(f)
	}
	if minutes < 0 {
		return 0, validationError("duration must not be negative")
	}
	return minutes, nil
}
