package store

import "errors"

var (
	// ErrUserNotFound means an id was well-formed but matched no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidID means an id could not be parsed as an ObjectID hex string.
	ErrInvalidID = errors.New("invalid id")
)
