package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2020, time.March, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"iso date", "2020-03-07"},
		{"rfc3339", "2020-03-07T18:30:00Z"},
		{"rfc3339 with offset", "2020-03-07T10:00:00+02:00"},
		{"display form", "Sat Mar 07 2020"},
		{"slashes", "2020/03/07"},
		{"surrounding spaces", "  2020-03-07 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2020-13-01", "07.03.2020"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mon Jan 01 1990", FormatDate(d))
}

func TestTruncateDay(t *testing.T) {
	in := time.Date(2021, time.May, 4, 23, 59, 59, 999, time.FixedZone("X", -3*3600))
	got := TruncateDay(in)
	assert.Equal(t, time.Date(2021, time.May, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestExerciseToLogEntry(t *testing.T) {
	e := Exercise{
		Description: "run",
		Duration:    30,
		Date:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, LogEntry{Description: "run", Duration: 30, Date: "Wed Jan 01 2020"}, e.ToLogEntry())
}
