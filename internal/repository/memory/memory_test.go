package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	first := &domain.User{Username: "fcc_test"}
	id1, err := users.Create(ctx, first)
	require.NoError(t, err)

	second := &domain.User{Username: "fcc_test"}
	id2, err := users.Create(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "duplicate usernames still get distinct ids")

	got, err := users.GetByID(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "fcc_test", got.Username)

	_, err = users.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = users.Create(ctx, &domain.User{})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestExerciseRepositoryFind(t *testing.T) {
	ctx := context.Background()
	exercises := NewStore().Exercises()
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	for _, e := range []domain.Exercise{
		{UserID: userID, Description: "c", Duration: 3, Date: day(2021, time.March, 1)},
		{UserID: userID, Description: "a", Duration: 1, Date: day(2019, time.June, 1)},
		{UserID: userID, Description: "b", Duration: 2, Date: day(2020, time.December, 31)},
		{UserID: userID, Description: "b0", Duration: 2, Date: day(2020, time.January, 1)},
		{UserID: otherID, Description: "x", Duration: 9, Date: day(2020, time.June, 1)},
	} {
		e := e
		_, err := exercises.Create(ctx, &e)
		require.NoError(t, err)
	}

	all, err := exercises.Find(ctx, repository.ExerciseFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "a", all[0].Description, "sorted by date")

	from, to := day(2020, time.January, 1), day(2020, time.December, 31)
	ranged, err := exercises.Find(ctx, repository.ExerciseFilter{UserID: userID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, ranged, 2, "bounds are inclusive")
	assert.Equal(t, "b0", ranged[0].Description)
	assert.Equal(t, "b", ranged[1].Description)

	limited, err := exercises.Find(ctx, repository.ExerciseFilter{UserID: userID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := exercises.Find(ctx, repository.ExerciseFilter{UserID: primitive.NewObjectID()})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestExportRepository(t *testing.T) {
	ctx := context.Background()
	exports := NewStore().Exports()
	userID := primitive.NewObjectID()

	_, err := exports.Create(ctx, &domain.LogExport{UserID: userID, ObjectKey: "exports/a.json", Count: 1})
	require.NoError(t, err)
	id, err := exports.Create(ctx, &domain.LogExport{UserID: userID, ObjectKey: "exports/b.json", Count: 2})
	require.NoError(t, err)

	got, err := exports.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "exports/b.json", got.ObjectKey)

	list, err := exports.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "exports/b.json", list[0].ObjectKey, "newest first")

	_, err = exports.Create(ctx, &domain.LogExport{UserID: userID})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Users().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
