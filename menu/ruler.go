package menu

//go:generate mockgen -destination=mock/mock_ruler.go -package=mockmenu -source=ruler.go

import (
	"context"

	"github.com/go-leo/castle/room"
)

// Ruler is what the menu needs from the king.
type Ruler interface {
	AddRoomToCastle(ctx context.Context, r room.Room) error
	DescribeCastle() string
}
