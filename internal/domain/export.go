package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogExport stores metadata about a log snapshot written to object storage.
// The JSON document itself lives in the bucket under ObjectKey.
type LogExport struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ObjectKey string             `bson:"objectKey" json:"objectKey"`
	Count     int                `bson:"count" json:"count"` // Entries in the snapshot
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
