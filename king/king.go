package king

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-leo/castle/castle"
	"github.com/go-leo/castle/herald"
	"github.com/go-leo/castle/room"
)

// King rules the one castle of the process.
type King interface {
	// AddRoomToCastle adds r to the king's castle and proclaims a RoomAdded. It fails only when r
	// was not added; a proclamation nobody could hear is logged to slog.Default.
	AddRoomToCastle(ctx context.Context, r room.Room) error

	// DescribeCastle describes the king's castle.
	DescribeCastle() string

	// RoomCount returns the number of rooms in the king's castle.
	RoomCount() int

	// Rooms returns the rooms of the king's castle in the order they were added.
	Rooms() []room.Room

	// Herald returns the bus the king proclaims on.
	Herald() herald.Bus
}

// RoomAdded is proclaimed after a room joins the castle.
type RoomAdded struct {
	// Position is the 1-based place of the room in the castle.
	Position int
	Kind     room.Kind
	Label    string
}

var (
	instance King
	once     sync.Once
)

// Instance returns the king, crowning him on first use.
func Instance() King {
	once.Do(func() {
		instance = &king{castle: castle.New(), herald: herald.NewBus()}
	})
	return instance
}

var _ King = (*king)(nil)

type king struct {
	mu     sync.RWMutex
	castle *castle.Castle
	herald herald.Bus
}

func (k *king) AddRoomToCastle(ctx context.Context, r room.Room) error {
	k.mu.Lock()
	if err := k.castle.AddRoom(r); err != nil {
		k.mu.Unlock()
		return fmt.Errorf("king: failed to add room: %w", err)
	}
	added := RoomAdded{Position: k.castle.Len(), Kind: r.Kind(), Label: r.Describe()}
	k.mu.Unlock()
	p := herald.NewProclamation(ctx, added)
	if err := k.herald.Emit(p); err != nil {
		slog.Default().WarnContext(ctx, "room added but proclamation failed",
			slog.String("proclamation", p.ID()),
			slog.Int("position", added.Position),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (k *king) DescribeCastle() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.castle.Describe()
}

func (k *king) RoomCount() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.castle.Len()
}

func (k *king) Rooms() []room.Room {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.castle.Rooms()
}

func (k *king) Herald() herald.Bus {
	return k.herald
}
