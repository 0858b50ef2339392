package duo

import "errors"

// All folds many Options into one: the first None wins, otherwise the
// payloads are collected in argument order.
func All[T any](opts ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.IsNone() {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Any returns the first present Option verbatim, or None when every input is
// absent.
func Any[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.IsSome() {
			return o
		}
	}
	return None[T]()
}

// AllLazy is All over thunks: evaluation stops at the first None and later
// thunks are never invoked.
func AllLazy[T any](thunks ...func() Option[T]) Option[[]T] {
	values := make([]T, 0, len(thunks))
	for _, next := range thunks {
		o := next()
		if o.IsNone() {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// AnyLazy is Any over thunks: evaluation stops at the first Some.
func AnyLazy[T any](thunks ...func() Option[T]) Option[T] {
	for _, next := range thunks {
		if o := next(); o.IsSome() {
			return o
		}
	}
	return None[T]()
}

// AllResults mirrors All; the first failure is returned with its identity
// intact.
func AllResults[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsErr() {
			return ErrFrom[T, []T](r)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// AnyResult returns the first Ok verbatim. When every input failed the last
// failure is returned, deterministic by argument order.
func AnyResult[T any](results ...Result[T]) Result[T] {
	var last Result[T]
	for _, r := range results {
		if r.IsOk() {
			return r
		}
		last = r
	}
	if last.IsEmpty() {
		return Err[T](errors.New("duo: no results"))
	}
	return last
}

// AllResultsLazy is AllResults over thunks; thunks after the first failure
// are never invoked.
func AllResultsLazy[T any](thunks ...func() Result[T]) Result[[]T] {
	values := make([]T, 0, len(thunks))
	for _, next := range thunks {
		r := next()
		if r.IsErr() {
			return ErrFrom[T, []T](r)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// AnyResultLazy is AnyResult over thunks; thunks after the first Ok are
// never invoked.
func AnyResultLazy[T any](thunks ...func() Result[T]) Result[T] {
	var last Result[T]
	for _, next := range thunks {
		last = next()
		if last.IsOk() {
			return last
		}
	}
	if last.IsEmpty() {
		return Err[T](errors.New("duo: no results"))
	}
	return last
}

// Values extracts the payloads of the populated containers, skipping the
// absent or failed ones.
func Values[T any, C Container[T]](containers ...C) []T {
	out := make([]T, 0, len(containers))
	for _, c := range containers {
		if c.HasValue() {
			out = append(out, c.UnwrapUnchecked())
		}
	}
	return out
}
