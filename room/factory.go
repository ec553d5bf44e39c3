package room

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-leo/castle/factory"
)

var _ factory.Factory[Room, Kind] = (*Factory)(nil)

// Factory builds rooms by cloning the prototype registered for each kind.
type Factory struct {
	mu         sync.RWMutex
	prototypes map[Kind]Room
}

// NewFactory returns a Factory with a prototype for every recognized kind.
func NewFactory() *Factory {
	return &Factory{
		prototypes: map[Kind]Room{
			ThroneRoomKind: &ThroneRoom{},
			DungeonKind:    &Dungeon{},
		},
	}
}

// Create returns a new room of the given kind. For an unrecognized kind it returns a nil Room and an
// error wrapping ErrUnknownKind; the nil room must not be stored anywhere.
func (f *Factory) Create(ctx context.Context, kind Kind) (Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.RLock()
	proto, ok := f.prototypes[kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return proto.Clone(), nil
}

// Register replaces the prototype for proto's kind with a copy of proto.
func (f *Factory) Register(proto Room) error {
	if proto == nil {
		return ErrNilRoom
	}
	kind := proto.Kind()
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prototypes[kind] = proto.Clone()
	return nil
}
