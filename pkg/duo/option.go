package duo

import "fmt"

// Option is a two-variant container: Some carries a payload, None carries
// nothing. The zero value is None, so absence never allocates.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// From absorbs absent inputs: nil-like values and NaN floats produce None,
// anything else is wrapped in Some. NaN counts as an absence signal here,
// not as a number.
func From[T any](v T) Option[T] {
	if IsNil(v) || IsNaN(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// HasValue is IsSome under the name shared with Result.
func (o Option[T]) HasValue() bool {
	return o.some
}

// Is is a type guard, not value equality: true iff other is an Option with
// the same payload type and the same discriminant. Foreign types compare
// false, never panic.
func (o Option[T]) Is(other any) bool {
	ot, ok := other.(Option[T])
	return ok && ot.some == o.some
}

// Eq compares discriminant and payload. Payloads compare by identity or
// primitive equality, never deeply: two distinct slices holding equal
// elements are not equal here.
func (o Option[T]) Eq(other any) bool {
	ot, ok := other.(Option[T])
	if !ok || ot.some != o.some {
		return false
	}
	if !o.some {
		return true
	}
	return identical(o.value, ot.value)
}

func (o Option[T]) Neq(other any) bool {
	return !o.Eq(other)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Into returns a pointer to a copy of the payload, or nil when None. The
// copy keeps the container immutable through the returned pointer.
func (o Option[T]) Into() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&UnwrapError{Msg: msg})
	}
	return o.value
}

func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&UnwrapError{Msg: "duo: unwrap on None"})
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(onNone func() T) T {
	if o.some {
		return o.value
	}
	return onNone()
}

// UnwrapUnchecked returns the payload, or the zero value when None. It never
// panics; escape hatch for callers that have already checked the tag.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElse(onNone func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return onNone()
}

func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

func (o Option[T]) AndThen(onSome func(v T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return onSome(o.value)
}

// Map transforms the payload in place of the type; for a payload type change
// use the package-level Map.
func (o Option[T]) Map(onSome func(v T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(onSome(o.value))
}

func (o Option[T]) MapOr(def T, onSome func(v T) T) T {
	if !o.some {
		return def
	}
	return onSome(o.value)
}

func (o Option[T]) MapOrElse(onNone func() T, onSome func(v T) T) T {
	if !o.some {
		return onNone()
	}
	return onSome(o.value)
}

// Filter keeps the payload only while the predicate holds.
func (o Option[T]) Filter(keep func(v T) bool) Option[T] {
	if o.some && keep(o.value) {
		return o
	}
	return None[T]()
}

// OkOr converts to Result: Some becomes Ok, None becomes the given failure.
func (o Option[T]) OkOr(err error) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](err)
}

func (o Option[T]) OkOrElse(onNone func() error) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](onNone())
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map transforms the payload to a new type; None passes through unchanged.
func Map[In, Out any](o Option[In], onSome func(v In) Out) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return Some(onSome(o.value))
}

func MapOr[In, Out any](o Option[In], def Out, onSome func(v In) Out) Out {
	if !o.some {
		return def
	}
	return onSome(o.value)
}

func MapOrElse[In, Out any](o Option[In], onNone func() Out, onSome func(v In) Out) Out {
	if !o.some {
		return onNone()
	}
	return onSome(o.value)
}

func AndThen[In, Out any](o Option[In], onSome func(v In) Option[Out]) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return onSome(o.value)
}
