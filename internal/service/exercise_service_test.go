package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	users     UserService
	exercises ExerciseService
	user      *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		users:     NewUserService(store.Users()),
		exercises: NewExerciseService(store.Users(), store.Exercises()),
	}
	user, err := f.users.CreateUser(context.Background(), "fcc_test")
	require.NoError(t, err)
	f.user = user
	return f
}

func (f *fixture) add(t *testing.T, description, duration, date string) *domain.Exercise {
	t.Helper()
	_, ex, err := f.exercises.AddExercise(context.Background(), f.user.ID.Hex(), NewExercise{
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	require.NoError(t, err)
	return ex
}

func TestAddExercise(t *testing.T) {
	f := newFixture(t)

	user, ex, err := f.exercises.AddExercise(context.Background(), f.user.ID.Hex(), NewExercise{
		Description: "test",
		Duration:    "30",
		Date:        "1990-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, user.ID)
	assert.Equal(t, "fcc_test", user.Username)
	assert.Equal(t, 30, ex.Duration)
	assert.Equal(t, "Mon Jan 01 1990", domain.FormatDate(ex.Date))
	assert.Equal(t, f.user.ID, ex.UserID)
}

func TestAddExerciseDefaultsToToday(t *testing.T) {
	f := newFixture(t)
	fixed := time.Date(2024, time.February, 29, 17, 45, 0, 0, time.UTC)
	f.exercises.(*exerciseService).now = func() time.Time { return fixed }

	ex := f.add(t, "walk", "10", "")
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), ex.Date)
	assert.Equal(t, "Thu Feb 29 2024", domain.FormatDate(ex.Date))
}

func TestAddExerciseUnknownUser(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{primitive.NewObjectID().Hex(), "bogus"} {
		_, _, err := f.exercises.AddExercise(context.Background(), id, NewExercise{Description: "x", Duration: "1"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	}
}

func TestAddExerciseValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input NewExercise
	}{
		{"missing description", NewExercise{Duration: "10"}},
		{"missing duration", NewExercise{Description: "run"}},
		{"text duration", NewExercise{Description: "run", Duration: "ten"}},
		{"fractional duration", NewExercise{Description: "run", Duration: "10.5"}},
		{"negative duration", NewExercise{Description: "run", Duration: "-5"}},
		{"bad date", NewExercise{Description: "run", Duration: "10", Date: "someday"}},
		{"blank date", NewExercise{Description: "run", Duration: "10", Date: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.exercises.AddExercise(context.Background(), f.user.ID.Hex(), tt.input)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestParseDuration(t *testing.T) {
	for raw, want := range map[string]int{"30": 30, " 45 ": 45, "60.0": 60, "0": 0} {
		got, err := parseDuration(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestGetLogFilters(t *testing.T) {
	f := newFixture(t)
	f.add(t, "before", "1", "2019-12-31")
	f.add(t, "start", "2", "2020-01-01")
	f.add(t, "middle", "3", "2020-06-15")
	f.add(t, "end", "4", "2020-12-31")
	f.add(t, "after", "5", "2021-01-01")
	ctx := context.Background()
	id := f.user.ID.Hex()

	log, err := f.exercises.GetLog(ctx, id, LogQuery{})
	require.NoError(t, err)
	assert.Len(t, log.Entries, 5)
	assert.Equal(t, "fcc_test", log.User.Username)

	log, err = f.exercises.GetLog(ctx, id, LogQuery{From: "2020-01-01", To: "2020-12-31"})
	require.NoError(t, err)
	var got []string
	for _, e := range log.Entries {
		got = append(got, e.Description)
	}
	assert.Equal(t, []string{"start", "middle", "end"}, got)

	log, err = f.exercises.GetLog(ctx, id, LogQuery{Limit: "2"})
	require.NoError(t, err)
	assert.Len(t, log.Entries, 2)

	log, err = f.exercises.GetLog(ctx, id, LogQuery{Limit: "0"})
	require.NoError(t, err)
	assert.Len(t, log.Entries, 5, "zero limit means uncapped")

	log, err = f.exercises.GetLog(ctx, id, LogQuery{From: "2030-01-01"})
	require.NoError(t, err)
	assert.NotNil(t, log.Entries)
	assert.Empty(t, log.Entries)
}

func TestGetLogValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, q := range []LogQuery{{From: "nope"}, {To: "2020-02-30"}, {Limit: "-1"}, {Limit: "two"}} {
		_, err := f.exercises.GetLog(ctx, f.user.ID.Hex(), q)
		assert.ErrorIs(t, err, ErrValidationFailed, "%+v", q)
	}

	// filters are checked before the user lookup
	_, err := f.exercises.GetLog(ctx, primitive.NewObjectID().Hex(), LogQuery{From: "nope"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = f.exercises.GetLog(ctx, primitive.NewObjectID().Hex(), LogQuery{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
