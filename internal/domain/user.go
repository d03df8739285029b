package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered person whose exercises are tracked.
// Usernames are not unique; the ObjectID is the only identity.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}
