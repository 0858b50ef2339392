package duo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ Container[int] = Option[int]{}
	_ Container[int] = Result[int]{}
)

func TestExtractor_SharedSurface(t *testing.T) {
	t.Parallel()

	firstOr := func(e Extractor[int], def int) int {
		return e.UnwrapOr(def)
	}

	assert.Equal(t, 5, firstOr(Some(5), -1))
	assert.Equal(t, -1, firstOr(None[int](), -1))
	assert.Equal(t, 5, firstOr(Ok(5), -1))
	assert.Equal(t, -1, firstOr(Err[int](errors.New("boom")), -1))
}
