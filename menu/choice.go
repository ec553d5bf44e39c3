package menu

import (
	"strconv"
	"strings"
)

// Choice is one entry of the menu.
type Choice int

const (
	Invalid Choice = iota
	AddThroneRoom
	AddDungeon
	DescribeCastle
	Exit
)

// ParseChoice reads a choice from one line of input. Anything that is not the number of a menu entry
// is Invalid.
func ParseChoice(line string) Choice {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Invalid
	}
	c := Choice(n)
	if c < AddThroneRoom || c > Exit {
		return Invalid
	}
	return c
}

func (c Choice) String() string {
	switch c {
	case AddThroneRoom:
		return "add-throne-room"
	case AddDungeon:
		return "add-dungeon"
	case DescribeCastle:
		return "describe-castle"
	case Exit:
		return "exit"
	default:
		return "invalid"
	}
}
