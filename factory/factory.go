package factory

import "context"

// Factory creates a T described by param P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The FactoryFunc type is an adapter to allow the use of ordinary functions as Factory.
type FactoryFunc[T any, P any] func(ctx context.Context, param P) (T, error)

// Create calls f(ctx, param).
func (f FactoryFunc[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}
