package domain

import (
	"errors"
	"strings"
	"time"
)

// DisplayDateLayout renders dates like "Mon Jan 02 2006".
const DisplayDateLayout = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

// accepted input layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	DisplayDateLayout,
	"2006/01/02",
}

// ParseDate parses a calendar date and truncates it to UTC midnight.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TruncateDay(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// TruncateDay returns midnight UTC of t's calendar day in UTC.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a stored date for API responses.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}
