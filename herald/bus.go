package herald

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/syncx"
	"github.com/go-leo/gox/syncx/chanx"
	"golang.org/x/exp/slices"
)

// Bus carries proclamations from whoever makes them to the listeners registered for their body type.
type Bus interface {
	// On registers lis for every proclamation whose body has the same type as body.
	On(body any, lis Listener) (Subscription, error)

	// Once registers lis for the next proclamation whose body has the same type as body.
	Once(body any, lis Listener) (Subscription, error)

	// Emit synchronously calls each listener registered for p's body type,
	// in the order they were registered.
	Emit(p *Proclamation) error

	// AsyncEmit calls each listener registered for p's body type on the bus's pool.
	AsyncEmit(p *Proclamation) <-chan error

	// Off removes the registration identified by sub. It reports whether one was removed.
	Off(sub Subscription) bool

	// Close bus gracefully.
	Close(ctx context.Context) error
}

var _ Bus = (*bus)(nil)

type bus struct {
	mu         sync.Mutex
	listeners  map[reflect.Type][]entry
	lastSub    Subscription
	wg         sync.WaitGroup
	inShutdown atomic.Bool
	options    *option
}

// NewBus returns an open Bus.
func NewBus(opts ...Option) Bus {
	return &bus{
		listeners: make(map[reflect.Type][]entry),
		options:   newOption(opts...),
	}
}

func (b *bus) On(body any, lis Listener) (Subscription, error) {
	return b.register(body, lis, false)
}

func (b *bus) Once(body any, lis Listener) (Subscription, error) {
	return b.register(body, lis, true)
}

func (b *bus) Emit(p *Proclamation) error {
	entries, err := b.take(p)
	if err != nil {
		return err
	}
	errs := make([]error, 0, len(entries))
	for _, e := range entries {
		errs = append(errs, e.listener.Hear(p))
	}
	return errors.Join(errs...)
}

func (b *bus) AsyncEmit(p *Proclamation) <-chan error {
	entries, err := b.take(p)
	if err != nil {
		return errChan(err)
	}
	if len(entries) == 0 {
		return errChan(ErrNoListener{BodyType: p.Type()})
	}
	errCs := make([]<-chan error, 0, len(entries))
	for _, e := range entries {
		lis := e.listener
		errC := make(chan error, 1)
		b.wg.Add(1)
		err := b.options.Pool.Go(func() {
			defer b.wg.Done()
			defer close(errC)
			if err := lis.Hear(p); err != nil {
				errC <- err
			}
		})
		if err != nil {
			errC <- err
			close(errC)
			b.wg.Done()
		}
		errCs = append(errCs, errC)
	}
	return chanx.Combine[error](errCs...)
}

func (b *bus) Off(sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for bodyType, entries := range b.listeners {
		i := slices.IndexFunc(entries, func(e entry) bool { return e.sub == sub })
		if i < 0 {
			continue
		}
		entries = slices.Delete(entries, i, i+1)
		if len(entries) == 0 {
			delete(b.listeners, bodyType)
		} else {
			b.listeners[bodyType] = entries
		}
		return true
	}
	return false
}

func (b *bus) Close(ctx context.Context) error {
	if b.inShutdown.CompareAndSwap(false, true) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncx.WaitNotify(&b.wg):
			return nil
		}
	}
	return ErrBusClosed
}

func (b *bus) register(body any, lis Listener, once bool) (Subscription, error) {
	if body == nil {
		return 0, ErrBodyNil
	}
	if lis == nil {
		return 0, ErrListenerNil
	}
	if b.inShutdown.Load() {
		return 0, ErrBusClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastSub++
	bodyType := reflect.TypeOf(body)
	b.listeners[bodyType] = append(b.listeners[bodyType], entry{sub: b.lastSub, listener: lis, once: once})
	return b.lastSub, nil
}

// take returns the listeners due to hear p and drops the one-shot ones from the bus.
func (b *bus) take(p *Proclamation) ([]entry, error) {
	if p == nil || p.body == nil {
		return nil, ErrBodyNil
	}
	if b.inShutdown.Load() {
		return nil, ErrBusClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	bodyType := p.Type()
	entries := b.listeners[bodyType]
	taken := slices.Clone(entries)
	kept := entries[:0]
	for _, e := range entries {
		if !e.once {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(b.listeners, bodyType)
	} else {
		b.listeners[bodyType] = kept
	}
	return taken, nil
}

func errChan(err error) <-chan error {
	errC := make(chan error, 1)
	errC <- err
	close(errC)
	return errC
}
