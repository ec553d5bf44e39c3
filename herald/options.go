package herald

import (
	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
)

type option struct {
	Pool gopher.Gopher
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	return o
}

type Option func(*option)

// Pool sets the goroutine pool AsyncEmit runs listeners on.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}
