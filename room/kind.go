package room

import "strconv"

// Kind selects a room variant. The zero value is not a valid kind.
type Kind int

const (
	ThroneRoomKind Kind = iota + 1
	DungeonKind
)

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k == ThroneRoomKind || k == DungeonKind
}

func (k Kind) String() string {
	switch k {
	case ThroneRoomKind:
		return "throne room"
	case DungeonKind:
		return "dungeon"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}
