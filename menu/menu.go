package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-leo/castle/command"
	"github.com/go-leo/castle/factory"
	"github.com/go-leo/castle/room"
)

const (
	Listing = "1. Add a throne room\n" +
		"2. Add a dungeon\n" +
		"3. Describe the castle\n" +
		"4. Exit\n"
	Prompt = "Choose an option: "

	ThroneRoomAdded = "Throne room added."
	DungeonAdded    = "Dungeon added."
	Farewell        = "Leaving the castle."
	NotAnOption     = "That is not a valid menu option."
)

// Menu drives the castle from a line-based text interface.
type Menu struct {
	ruler   Ruler
	rooms   factory.Factory[room.Room, room.Kind]
	options *options
}

// New returns a Menu that builds rooms with rooms and hands them to ruler.
func New(ruler Ruler, rooms factory.Factory[room.Room, room.Kind], opts ...Option) *Menu {
	return &Menu{
		ruler:   ruler,
		rooms:   rooms,
		options: new(options).apply(opts...).correct(),
	}
}

// Run shows the menu and executes one choice per line read from in until Exit is chosen or in is
// exhausted. Only a failure to read in or write out, or the end of ctx, stops it early; the end of
// ctx is noticed even while Run waits for a line.
func (m *Menu) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	commands := m.commands(out)
	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)
	choice := Invalid
	for choice != Exit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, Listing+Prompt); err != nil {
			return fmt.Errorf("menu: failed to write menu: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			switch {
			case !ok:
				// end of input leaves like Exit
				if _, err := io.WriteString(out, "\n"); err != nil {
					return fmt.Errorf("menu: failed to write menu: %w", err)
				}
				choice = Exit
			case l.err != nil:
				return fmt.Errorf("menu: failed to read choice: %w", l.err)
			default:
				choice = ParseChoice(l.text)
				if choice == Invalid {
					m.options.Logger.InfoContext(ctx, "unrecognized menu input",
						slog.String("input", abbreviate(l.text)),
						slog.Int("length", len(l.text)),
					)
				}
			}
		}
		if err := commands[choice].Execute(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if _, werr := fmt.Fprintf(out, "Something went wrong: %v\n", err); werr != nil {
				return fmt.Errorf("menu: failed to write error: %w", werr)
			}
		}
	}
	return nil
}

type line struct {
	text string
	err  error
}

// readLines sends every line of in, however long, until in is exhausted or done is closed.
// The channel is closed at end of input.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			text, err := r.ReadString('\n')
			if text != "" {
				select {
				case lines <- line{text: text}:
				case <-done:
					return
				}
			}
			if err == nil {
				continue
			}
			if !errors.Is(err, io.EOF) {
				select {
				case lines <- line{err: err}:
				case <-done:
				}
			}
			return
		}
	}()
	return lines
}

const maxLoggedInput = 64

func abbreviate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLoggedInput {
		return text
	}
	return text[:maxLoggedInput] + "..."
}

func (m *Menu) commands(out io.Writer) map[Choice]command.Command {
	commands := map[Choice]command.Command{
		AddThroneRoom:  m.addRoom(room.ThroneRoomKind, ThroneRoomAdded, out),
		AddDungeon:     m.addRoom(room.DungeonKind, DungeonAdded, out),
		DescribeCastle: m.say(out, m.ruler.DescribeCastle),
		Exit:           m.say(out, func() string { return Farewell + "\n" }),
		Invalid:        m.say(out, func() string { return NotAnOption + "\n" }),
	}
	for choice, cmd := range commands {
		commands[choice] = command.Chain(cmd, command.Logging(m.options.Logger, choice.String()))
	}
	return commands
}

func (m *Menu) addRoom(kind room.Kind, confirmation string, out io.Writer) command.Command {
	return command.CommandFunc(func(ctx context.Context) error {
		r, err := m.rooms.Create(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", kind, err)
		}
		if err := m.ruler.AddRoomToCastle(ctx, r); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, confirmation)
		return err
	})
}

func (m *Menu) say(out io.Writer, text func() string) command.Command {
	return command.CommandFunc(func(context.Context) error {
		_, err := io.WriteString(out, text())
		return err
	})
}
