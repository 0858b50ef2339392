package duo

import "fmt"

// Safe invokes f and captures every failure mode as absence: a non-nil error
// and a panic both produce None. The panic never escapes. Arguments are
// bound by closure; deferred computations go through the future package
// instead, a pending computation has no place inside a synchronous Option.
func Safe[Out any](f func() (Out, error)) (o Option[Out]) {
	defer func() {
		if r := recover(); r != nil {
			o = None[Out]()
		}
	}()

	out, err := f()
	if err != nil {
		return None[Out]()
	}
	return Some(out)
}

// SafeResult is the Result-producing sibling of Safe: the captured failure
// is kept as the error payload instead of being dropped. A recovered panic
// value that is itself an error is kept as-is, anything else is wrapped.
func SafeResult[Out any](f func() (Out, error)) (res Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Err[Out](err)
			} else {
				res = Err[Out](fmt.Errorf("duo: recovered: %v", r))
			}
		}
	}()

	out, err := f()
	if err != nil {
		return Err[Out](err)
	}
	return Ok(out)
}
