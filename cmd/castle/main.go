package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/go-leo/castle/config"
	"github.com/go-leo/castle/herald"
	"github.com/go-leo/castle/king"
	"github.com/go-leo/castle/menu"
	"github.com/go-leo/castle/room"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err := king.Instance().Herald().Close(context.Background()); err != nil {
		slog.Warn("failed to close the herald", slog.String("error", err.Error()))
	}
	os.Exit(code)
}

// run drives one menu session on the king's castle and returns the exit code. It leaves the king's
// herald open, so it can be called more than once per process.
func run(ctx context.Context, in io.Reader, out io.Writer, errOut io.Writer) int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "failed to load config: %v\n", err)
		return 1
	}
	logger := cfg.Log.NewLogger(errOut)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Debug("no .env file found")
	}

	k := king.Instance()
	bus := k.Herald()
	heard, err := bus.On(king.RoomAdded{}, herald.ListenerFunc(func(p *herald.Proclamation) error {
		added := p.Body().(king.RoomAdded)
		logger.InfoContext(p.Context(), "room added to castle",
			slog.String("proclamation", p.ID()),
			slog.Int("position", added.Position),
			slog.String("room", added.Label),
		)
		return nil
	}))
	if err != nil {
		logger.Error("failed to listen to the herald", slog.String("error", err.Error()))
		return 1
	}
	defer bus.Off(heard)
	founded, err := bus.Once(king.RoomAdded{}, herald.ListenerFunc(func(p *herald.Proclamation) error {
		logger.InfoContext(p.Context(), "castle founded", slog.String("room", p.Body().(king.RoomAdded).Label))
		return nil
	}))
	if err != nil {
		logger.Error("failed to listen to the herald", slog.String("error", err.Error()))
		return 1
	}
	defer bus.Off(founded)

	m := menu.New(k, room.NewFactory(), menu.Logger(logger))
	err = m.Run(ctx, in, out)
	logTally(logger, k.Rooms())
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted")
		return 1
	case err != nil:
		logger.Error("menu stopped", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func logTally(logger *slog.Logger, rooms []room.Room) {
	tally := make(map[room.Kind]int)
	for _, r := range rooms {
		tally[r.Kind()]++
	}
	logger.Info("castle tally",
		slog.Int("rooms", len(rooms)),
		slog.Int(room.ThroneRoomKind.String(), tally[room.ThroneRoomKind]),
		slog.Int(room.DungeonKind.String(), tally[room.DungeonKind]),
	)
}
