package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged workout stored in the exercises collection.
// UserID must reference a user that existed when the exercise was inserted;
// the handler enforces this with a lookup before the write.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"` // minutes
	Date        time.Time          `bson:"date"`
}

// LogFilter narrows an exercise-log query. From and To are inclusive bounds
// on Exercise.Date; a zero Limit means no cap.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}
