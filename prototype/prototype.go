package prototype

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Prototype is implemented by values that can produce an independent copy of themselves.
type Prototype[T any] interface {
	// Clone returns a copy that shares no mutable state with the receiver.
	Clone() T
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clone deep copies the value src points to into a newly allocated T.
// Only exported fields survive the copy.
func Clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("prototype: failed to encode %T: %w", src, err)
	}
	tgt := new(T)
	if err := json.Unmarshal(data, tgt); err != nil {
		return nil, fmt.Errorf("prototype: failed to decode %T: %w", tgt, err)
	}
	return tgt, nil
}

// MustClone is like Clone but panics if src cannot be copied.
func MustClone[T any](src *T) *T {
	tgt, err := Clone(src)
	if err != nil {
		panic(err)
	}
	return tgt
}
