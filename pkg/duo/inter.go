package duo

// Extractor is the unwrap surface shared by both containers.
type Extractor[T any] interface {
	// Unwrap returns the payload or panics with *UnwrapError
	Unwrap() T
	// UnwrapOr returns the payload or the eager default
	UnwrapOr(def T) T
	// UnwrapOrElse returns the payload or the lazily computed default
	UnwrapOrElse(onMissing func() T) T
	// UnwrapUnchecked returns the payload or the zero value, never panics
	UnwrapUnchecked() T
	// Into returns a pointer to a copy of the payload, nil when absent
	Into() *T
}

// Container extends Extractor with the discriminant test shared by Option
// and Result.
type Container[T any] interface {
	Extractor[T]
	// HasValue reports whether the payload side is populated
	HasValue() bool
}
