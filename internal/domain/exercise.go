// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single timed activity logged against a User.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Owning user, checked at creation only
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // Minutes
	Date        time.Time          `bson:"date" json:"date"`         // UTC midnight of the calendar day
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// LogEntry is the projection of an Exercise shown in a user's log.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ToLogEntry renders the exercise with its display date.
func (e *Exercise) ToLogEntry() LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
	}
}

// ExerciseLog is a user's filtered list of exercises.
type ExerciseLog struct {
	User    *User
	Entries []Exercise
}
