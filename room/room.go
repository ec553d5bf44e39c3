package room

import (
	"github.com/go-leo/castle/prototype"
)

// Room is one chamber of a castle.
type Room interface {
	// Clone returns an independent copy of the room.
	Clone() Room

	// Describe returns the fixed label of the room's variant.
	Describe() string

	// Kind returns the variant of the room.
	Kind() Kind
}

// cloneOf deep copies r through its concrete type, so every variant gets Clone from a single line.
func cloneOf[T any, PT interface {
	*T
	Room
}](r PT) Room {
	return PT(prototype.MustClone((*T)(r)))
}

var (
	_ prototype.Prototype[Room] = (*ThroneRoom)(nil)
	_ prototype.Prototype[Room] = (*Dungeon)(nil)
)

// ThroneRoom is where the king holds court.
type ThroneRoom struct{}

func (r *ThroneRoom) Clone() Room {
	return cloneOf(r)
}

func (*ThroneRoom) Describe() string {
	return ThroneRoomKind.String()
}

func (*ThroneRoom) Kind() Kind {
	return ThroneRoomKind
}

// Dungeon is where the king keeps his prisoners.
type Dungeon struct{}

func (r *Dungeon) Clone() Room {
	return cloneOf(r)
}

func (*Dungeon) Describe() string {
	return DungeonKind.String()
}

func (*Dungeon) Kind() Kind {
	return DungeonKind
}
