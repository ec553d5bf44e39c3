package command

import (
	"context"
	"log/slog"
	"time"
)

// A Command encapsulates a unit of processing work to be performed.
type Command interface {
	// Execute a unit of processing work to be performed
	Execute(ctx context.Context) error
}

// The CommandFunc type is an adapter to allow the use of ordinary functions as Command.
// If f is a function with the appropriate signature, CommandFunc(f) is a Command that calls f.
type CommandFunc func(ctx context.Context) error

// Execute calls f(ctx).
func (f CommandFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Decorator wraps a Command, adding some functionality before or after it runs.
type Decorator func(cmd Command) Command

// Chain decorates cmd with all decorators. The first decorator is the outermost.
func Chain(cmd Command, decorators ...Decorator) Command {
	for i := len(decorators) - 1; i >= 0; i-- {
		cmd = decorators[i](cmd)
	}
	return cmd
}

// Logging logs every execution of the decorated command under name.
func Logging(logger *slog.Logger, name string) Decorator {
	return func(cmd Command) Command {
		return CommandFunc(func(ctx context.Context) error {
			start := time.Now()
			err := cmd.Execute(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "command failed",
					slog.String("command", name),
					slog.Duration("elapsed", time.Since(start)),
					slog.String("error", err.Error()),
				)
				return err
			}
			logger.DebugContext(ctx, "command executed",
				slog.String("command", name),
				slog.Duration("elapsed", time.Since(start)),
			)
			return nil
		})
	}
}
