package herald

import (
	"errors"
	"reflect"
)

var (
	// ErrListenerNil Listener is nil
	ErrListenerNil = errors.New("herald: listener is nil")

	// ErrBodyNil Proclamation or its body is nil
	ErrBodyNil = errors.New("herald: proclamation body is nil")

	// ErrBusClosed bus was closed
	ErrBusClosed = errors.New("herald: bus was closed")
)

// ErrNoListener is sent by AsyncEmit when nobody listens for a body type.
type ErrNoListener struct {
	BodyType reflect.Type
}

func (e ErrNoListener) Error() string {
	return "herald: no listener for " + e.BodyType.String()
}
