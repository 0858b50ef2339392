package flow

import (
	"context"

	"github.com/ib-77/duo/pkg/duo"
)

// Chain wraps a duo.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res duo.Result[T]
}

func Start[T any](ctx context.Context, r duo.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, duo.Ok(v))
}

func (c Chain[T]) Result() duo.Result[T] {
	return c.res
}

// Then composes functions that already return duo.Result[T]
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) duo.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.UnwrapUnchecked())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: duo.FromPair(try(c.ctx, c.res.UnwrapUnchecked()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(ctx context.Context, v T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: duo.Ok(onOk(c.ctx, c.res.UnwrapUnchecked()))}
}

func (c Chain[T]) RepeatUntil(onOk func(ctx context.Context, v T) duo.Result[T],
	until func(ctx context.Context, v T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || until(c.ctx, c.res.UnwrapUnchecked()) {
			return c
		}
	}
}

func (c Chain[T]) While(onOk func(ctx context.Context, v T) duo.Result[T],
	while func(ctx context.Context, v T) bool) Chain[T] {

	for c.res.IsOk() && while(c.ctx, c.res.UnwrapUnchecked()) {
		c = c.Then(onOk)
	}
	return c
}

// Or keeps the receiver when it succeeded, otherwise the alternative when it
// did; two failures keep the receiver's failure.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And keeps the first failure, otherwise the required chain.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.ctx, c.res.UnwrapUnchecked())
	}
	return c
}

// Finally collapses the chain to a final value of the same type; for a type
// change use the package-level Finally.
func (c Chain[T]) Finally(
	onOk func(context.Context, T) T,
	onErr func(context.Context, error) T,
) T {
	return Finally(c.ctx, c.res, onOk, onErr)
}

// Switch moves a chain to a new payload type via a result-returning function
func Switch[In, Out any](c Chain[In],
	onOk func(ctx context.Context, v In) duo.Result[Out]) Chain[Out] {

	if c.res.IsErr() {
		return Chain[Out]{ctx: c.ctx, res: duo.ErrFrom[In, Out](c.res)}
	}
	return Chain[Out]{ctx: c.ctx, res: onOk(c.ctx, c.res.UnwrapUnchecked())}
}

// Try moves a chain to a new payload type via a (Out, error) function
func Try[In, Out any](c Chain[In],
	try func(ctx context.Context, v In) (Out, error)) Chain[Out] {

	if c.res.IsErr() {
		return Chain[Out]{ctx: c.ctx, res: duo.ErrFrom[In, Out](c.res)}
	}
	return Chain[Out]{ctx: c.ctx, res: duo.FromPair(try(c.ctx, c.res.UnwrapUnchecked()))}
}

// MapTo moves a chain to a new payload type via a plain function
func MapTo[In, Out any](c Chain[In],
	onOk func(ctx context.Context, v In) Out) Chain[Out] {

	if c.res.IsErr() {
		return Chain[Out]{ctx: c.ctx, res: duo.ErrFrom[In, Out](c.res)}
	}
	return Chain[Out]{ctx: c.ctx, res: duo.Ok(onOk(c.ctx, c.res.UnwrapUnchecked()))}
}

// Finally reduces a result to a concrete value via success/failure handlers
func Finally[In, Out any](ctx context.Context, r duo.Result[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) Out {

	if r.IsOk() {
		return onOk(ctx, r.UnwrapUnchecked())
	}
	return onErr(ctx, r.UnwrapErr())
}
