// Package pipe contains single-value, synchronous stage primitives for
// building value-transformation pipelines. Every stage is total: there is no
// error or cancellation branch to route, so the combinators carry plain values.
//
// Highlights:
// - Stage: a total transformation step func(ctx, T) T
// - Compose: fold stages into one, applied left to right
// - FromValue/Map/Tee/Value: fluent Chain[T] over a single value
// - Each: feed a slice sequentially into a sink
//
// All execution is strictly sequential; there are no channels or goroutines.
package pipe
