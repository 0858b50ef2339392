package duo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant container: Ok carries a payload, Err carries the
// failure reason. Each instance is stamped with an id and creation time at
// construction; both survive ErrFrom so a failure stays traceable to where
// it happened.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err wraps the failure reason. A nil reason is upgraded to a placeholder so
// a failed Result can never report success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("duo: nil error")
	}
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair bridges Go's (value, error) convention into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// ErrFrom carries a failure across a payload type change, keeping the
// original id and creation time.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	err := from.err
	if err == nil {
		err = errors.New("duo: nil error")
	}
	return Result[Out]{
		err:       err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// HasValue is IsOk under the name shared with Option.
func (r Result[T]) HasValue() bool {
	return r.ok
}

// IsEmpty reports the zero value: a Result that was never constructed
// through Ok or Err.
func (r Result[T]) IsEmpty() bool {
	return !r.ok && r.err == nil
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Is is a type guard, not value equality: true iff other is a Result with
// the same payload type and the same discriminant. Foreign types compare
// false, never panic.
func (r Result[T]) Is(other any) bool {
	or, ok := other.(Result[T])
	return ok && or.ok == r.ok
}

// Eq compares discriminant and payload; id and creation time do not
// participate. Payloads compare by identity or primitive equality, errors by
// interface identity.
func (r Result[T]) Eq(other any) bool {
	or, ok := other.(Result[T])
	if !ok || or.ok != r.ok {
		return false
	}
	if r.ok {
		return identical(r.value, or.value)
	}
	return identical(r.err, or.err)
}

func (r Result[T]) Neq(other any) bool {
	return !r.Eq(other)
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Into returns a pointer to a copy of the payload, or nil when Err.
func (r Result[T]) Into() *T {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Msg: msg, Err: r.err})
	}
	return r.value
}

func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Msg: "duo: unwrap on Err", Err: r.err})
	}
	return r.value
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T]) UnwrapOrElse(onErr func() T) T {
	if r.ok {
		return r.value
	}
	return onErr()
}

// UnwrapUnchecked returns the payload, or the zero value when Err. It never
// panics; escape hatch for callers that have already checked the tag.
func (r Result[T]) UnwrapUnchecked() T {
	return r.value
}

func (r Result[T]) ExpectErr(msg string) error {
	if r.ok {
		panic(&UnwrapError{Msg: msg})
	}
	return r.err
}

func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(&UnwrapError{Msg: "duo: unwrapErr on Ok"})
	}
	return r.err
}

// Ok projects to Option, dropping the failure reason.
func (r Result[T]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err projects the failure reason to Option, dropping the payload.
func (r Result[T]) Err() Option[error] {
	if r.ok {
		return None[error]()
	}
	return Some(r.err)
}

func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return other
}

func (r Result[T]) OrElse(onErr func(err error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return onErr(r.err)
}

func (r Result[T]) And(other Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return other
}

func (r Result[T]) AndThen(onOk func(v T) Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return onOk(r.value)
}

// Map transforms the payload in place of the type; for a payload type change
// use the package-level MapResult.
func (r Result[T]) Map(onOk func(v T) T) Result[T] {
	if !r.ok {
		return r
	}
	return Ok(onOk(r.value))
}

func (r Result[T]) MapOr(def T, onOk func(v T) T) T {
	if !r.ok {
		return def
	}
	return onOk(r.value)
}

func (r Result[T]) MapOrElse(onErr func(err error) T, onOk func(v T) T) T {
	if !r.ok {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// MapErr rewrites the failure reason; Ok passes through unchanged.
func (r Result[T]) MapErr(onErr func(err error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](onErr(r.err))
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MapResult transforms the payload to a new type; a failure is carried over
// via ErrFrom with its identity intact.
func MapResult[In, Out any](r Result[In], onOk func(v In) Out) Result[Out] {
	if !r.ok {
		return ErrFrom[In, Out](r)
	}
	return Ok(onOk(r.value))
}

func MapResultOr[In, Out any](r Result[In], def Out, onOk func(v In) Out) Out {
	if !r.ok {
		return def
	}
	return onOk(r.value)
}

func MapResultOrElse[In, Out any](r Result[In], onErr func(err error) Out, onOk func(v In) Out) Out {
	if !r.ok {
		return onErr(r.err)
	}
	return onOk(r.value)
}

func AndThenResult[In, Out any](r Result[In], onOk func(v In) Result[Out]) Result[Out] {
	if !r.ok {
		return ErrFrom[In, Out](r)
	}
	return onOk(r.value)
}
