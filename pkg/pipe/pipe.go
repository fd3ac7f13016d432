package pipe

import (
	"context"
)

// Stage is a total transformation step over a single value.
type Stage[T any] func(ctx context.Context, v T) T

// Compose folds stages into a single Stage, applied left to right.
// Composing nothing yields the identity stage.
func Compose[T any](stages ...Stage[T]) Stage[T] {
	return func(ctx context.Context, v T) T {
		for _, s := range stages {
			v = s(ctx, v)
		}
		return v
	}
}

// Chain wraps a value with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	val T
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Chain[T]{ctx: ctx, val: v}
}

func (c Chain[T]) Value() T {
	return c.val
}

// Map transforms the carried value to a new value
func (c Chain[T]) Map(stage Stage[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, val: stage(c.ctx, c.val)}
}

// Tee triggers a side effect without changing the carried value
func (c Chain[T]) Tee(sideEffect func(ctx context.Context, v T)) Chain[T] {
	if sideEffect != nil {
		sideEffect(c.ctx, c.val)
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(collapse func(ctx context.Context, v T) T) T {
	return collapse(c.ctx, c.val)
}

// Each feeds values into visit one at a time, in slice order.
func Each[T any](ctx context.Context, values []T, visit func(ctx context.Context, v T)) {
	for _, v := range values {
		visit(ctx, v)
	}
}
