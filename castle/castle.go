package castle

import (
	"strings"

	"github.com/go-leo/castle/room"
	"golang.org/x/exp/slices"
)

// Label opens every castle description.
const Label = "The castle has: "

// Castle owns its rooms in the order they were added. Rooms are never removed.
type Castle struct {
	rooms []room.Room
}

// New returns an empty castle.
func New() *Castle {
	return &Castle{}
}

// AddRoom appends r to the castle. A nil room is rejected with room.ErrNilRoom.
func (c *Castle) AddRoom(r room.Room) error {
	if r == nil {
		return room.ErrNilRoom
	}
	c.rooms = append(c.rooms, r)
	return nil
}

// Len returns the number of rooms in the castle.
func (c *Castle) Len() int {
	return len(c.rooms)
}

// Rooms returns the rooms in insertion order. The slice is a copy.
func (c *Castle) Rooms() []room.Room {
	return slices.Clone(c.rooms)
}

// Describe lists the label of every room, in insertion order, on a single line.
func (c *Castle) Describe() string {
	labels := make([]string, 0, len(c.rooms))
	for _, r := range c.rooms {
		labels = append(labels, r.Describe())
	}
	return Label + strings.Join(labels, ", ") + "\n"
}
