package duo

// UnwrapError is the panic payload of the unwrap family (Expect, Unwrap,
// ExpectErr, UnwrapErr called on the wrong variant). It is the only failure
// this module ever raises itself; every other operation is total and encodes
// failure in the returned container.
type UnwrapError struct {
	Msg string
	Err error
}

func (e *UnwrapError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *UnwrapError) Unwrap() error {
	return e.Err
}
