package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a tracked account stored in the users collection. Usernames are
// required but not unique.
type User struct {
	ID       primitive.ObjectID `json:"_id"      bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
}
