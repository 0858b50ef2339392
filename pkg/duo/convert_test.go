package duo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkOr_RoundTrip(t *testing.T) {
	t.Parallel()

	e := errors.New("absent")

	assert.True(t, Some(5).OkOr(e).Ok().Eq(Some(5)))
	assert.True(t, None[int]().OkOr(e).Ok().Eq(None[int]()))
	assert.True(t, None[int]().OkOr(e).Err().Eq(Some(e)))
	assert.True(t, Some(5).OkOr(e).Err().IsNone())
}

func TestOkOrElse_Laziness(t *testing.T) {
	t.Parallel()

	calls := 0
	makeErr := func() error {
		calls++
		return errors.New("absent")
	}

	assert.True(t, Some(5).OkOrElse(makeErr).IsOk())
	assert.Equal(t, 0, calls, "error factory must not run for Some")

	r := None[int]().OkOrElse(makeErr)
	assert.True(t, r.IsErr())
	assert.Equal(t, 1, calls)
}

func TestProjection_RoundTrip(t *testing.T) {
	t.Parallel()

	e := errors.New("boom")

	// Result -> Option -> Result keeps the payload
	assert.True(t, Ok(5).Ok().OkOr(e).Eq(Ok(5)))
	// the failure reason survives one projection, then is replaced
	assert.True(t, Err[int](e).Ok().OkOr(e).Eq(Err[int](e)))
}
