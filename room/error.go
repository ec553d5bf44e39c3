package room

import "errors"

var (
	// ErrUnknownKind kind is not a recognized room variant
	ErrUnknownKind = errors.New("room: unknown kind")

	// ErrNilRoom room is nil
	ErrNilRoom = errors.New("room: nil room")
)
