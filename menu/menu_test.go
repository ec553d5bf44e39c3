package menu_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/go-leo/castle/castle"
	"github.com/go-leo/castle/menu"
	mockmenu "github.com/go-leo/castle/menu/mock"
	"github.com/go-leo/castle/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// courtier is a Ruler over a private castle.
type courtier struct {
	castle *castle.Castle
}

func (c *courtier) AddRoomToCastle(_ context.Context, r room.Room) error {
	return c.castle.AddRoom(r)
}

func (c *courtier) DescribeCastle() string {
	return c.castle.Describe()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, ruler menu.Ruler, input string) string {
	t.Helper()
	var out bytes.Buffer
	m := menu.New(ruler, room.NewFactory(), menu.Logger(quietLogger()))
	require.NoError(t, m.Run(context.Background(), strings.NewReader(input), &out))
	return out.String()
}

func TestRunAddThenDescribe(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, "1\n2\n3\n4\n")

	assert.Equal(t, 4, strings.Count(out, menu.Listing+menu.Prompt))
	assert.Contains(t, out, menu.ThroneRoomAdded+"\n")
	assert.Contains(t, out, menu.DungeonAdded+"\n")
	assert.Contains(t, out, "The castle has: throne room, dungeon\n")
	assert.True(t, strings.HasSuffix(out, menu.Farewell+"\n"))
	assert.Equal(t, 2, c.castle.Len())
}

func TestRunInvalidChoice(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, "9\nmoat\n3\n4\n")

	assert.Equal(t, 2, strings.Count(out, menu.NotAnOption+"\n"))
	assert.Contains(t, out, "The castle has: \n")
	assert.Equal(t, 0, c.castle.Len())
}

func TestRunThreeDungeons(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, "2\n2\n2\n3\n4\n")

	assert.Equal(t, 3, strings.Count(out, menu.DungeonAdded+"\n"))
	assert.Contains(t, out, "The castle has: dungeon, dungeon, dungeon\n")
}

func TestRunStopsAtExit(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, "4\n1\n1\n")

	assert.Equal(t, 1, strings.Count(out, menu.Prompt))
	assert.NotContains(t, out, menu.ThroneRoomAdded)
	assert.Equal(t, 0, c.castle.Len())
}

func TestRunEndOfInput(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, "1")

	assert.Contains(t, out, menu.ThroneRoomAdded)
	assert.True(t, strings.HasSuffix(out, menu.Prompt+"\n"+menu.Farewell+"\n"))
	assert.Equal(t, 1, c.castle.Len())
}

func TestRunDelegatesToRuler(t *testing.T) {
	ctrl := gomock.NewController(t)
	ruler := mockmenu.NewMockRuler(ctrl)
	gomock.InOrder(
		ruler.EXPECT().AddRoomToCastle(gomock.Any(), gomock.AssignableToTypeOf(&room.ThroneRoom{})).Return(nil),
		ruler.EXPECT().AddRoomToCastle(gomock.Any(), gomock.AssignableToTypeOf(&room.Dungeon{})).Return(nil),
		ruler.EXPECT().DescribeCastle().Return("The castle has: throne room, dungeon\n"),
	)

	out := run(t, ruler, "1\n2\n3\n4\n")
	assert.Contains(t, out, "The castle has: throne room, dungeon\n")
}

func TestRunReportsRulerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ruler := mockmenu.NewMockRuler(ctrl)
	ruler.EXPECT().AddRoomToCastle(gomock.Any(), gomock.Any()).Return(errors.New("the treasury is empty"))

	out := run(t, ruler, "2\n4\n")
	assert.Contains(t, out, "Something went wrong: the treasury is empty\n")
	assert.NotContains(t, out, menu.DungeonAdded)
	assert.True(t, strings.HasSuffix(out, menu.Farewell+"\n"))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := menu.New(&courtier{castle: castle.New()}, room.NewFactory(), menu.Logger(quietLogger()))
	err := m.Run(ctx, strings.NewReader("1\n"), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunReadError(t *testing.T) {
	errDrawbridge := errors.New("drawbridge jammed")
	m := menu.New(&courtier{castle: castle.New()}, room.NewFactory(), menu.Logger(quietLogger()))
	err := m.Run(context.Background(), iotest.ErrReader(errDrawbridge), io.Discard)
	assert.ErrorIs(t, err, errDrawbridge)
}

func TestRunOverlongLine(t *testing.T) {
	c := &courtier{castle: castle.New()}
	out := run(t, c, strings.Repeat("x", 70000)+"\n3\n4\n")

	assert.Equal(t, 1, strings.Count(out, menu.NotAnOption+"\n"))
	assert.Contains(t, out, "The castle has: \n")
	assert.True(t, strings.HasSuffix(out, menu.Farewell+"\n"))
	assert.Equal(t, 0, c.castle.Len())
}

func TestRunCanceledWhileWaiting(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	m := menu.New(&courtier{castle: castle.New()}, room.NewFactory(), menu.Logger(quietLogger()))

	errC := make(chan error, 1)
	go func() {
		errC <- m.Run(ctx, in, io.Discard)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errC:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("menu kept waiting for input after cancel")
	}
}
