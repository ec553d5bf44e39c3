package menu

import "log/slog"

type options struct {
	Logger *slog.Logger
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) correct() *options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type Option func(o *options)

// Logger sets the logger the menu reports executed choices to.
func Logger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}
