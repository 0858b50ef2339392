package tests

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/ib-77/duo/pkg/duo"
	"github.com/ib-77/duo/pkg/duo/flow"
	"github.com/ib-77/duo/pkg/duo/future"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processRequest runs every URL through the same validate/parse/normalize
// pipeline and collapses each outcome to a display string.
func processRequest(urls []string) []string {
	ctx := context.Background()

	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		validated := flow.FromValue(ctx, raw).
			Then(func(_ context.Context, s string) duo.Result[string] {
				if !strings.HasPrefix(s, "https://") {
					return duo.Err[string](fmt.Errorf("unsupported scheme: %s", s))
				}
				return duo.Ok(s)
			})

		parsed := flow.Try(validated, func(_ context.Context, s string) (*url.URL, error) {
			return url.Parse(s)
		})

		host := flow.MapTo(parsed, func(_ context.Context, u *url.URL) string {
			return u.Hostname()
		})

		out = append(out, host.Finally(
			func(_ context.Context, h string) string { return h },
			func(_ context.Context, err error) string { return "invalid" },
		))
	}

	return out
}

// TestURLProcessingDirectly tests the URL processing logic directly without HTTP requests
func TestURLProcessingDirectly(t *testing.T) {
	urls := []string{
		// Valid URLs by structure (we won't actually fetch them)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",

		// Invalid URLs by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	// Verify we have results for all URLs
	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, "www.example.com", results[0])
}

// TestPipelineAcrossPackages drives a value through every layer: safe
// capture, option combinators, conversion, aggregation, and a future.
func TestPipelineAcrossPackages(t *testing.T) {
	ctx := context.Background()

	lookup := map[string]int{"a": 1, "b": 2}
	get := func(key string) duo.Option[int] {
		v, ok := lookup[key]
		if !ok {
			return duo.None[int]()
		}
		return duo.Some(v)
	}

	// option -> result -> option survives the round trip
	res := get("a").
		Map(func(v int) int { return v * 10 }).
		OkOrElse(func() error { return fmt.Errorf("missing key") })
	require.True(t, res.IsOk())
	assert.True(t, res.Ok().Eq(duo.Some(10)))

	// aggregate the whole lookup
	all := duo.All(get("a"), get("b"))
	require.True(t, all.IsSome())
	assert.Equal(t, []int{1, 2}, all.Unwrap())
	assert.True(t, duo.All(get("a"), get("missing")).IsNone())

	// the async boundary folds back into the same containers
	f := future.Go(func() (int, error) {
		return get("b").OkOr(fmt.Errorf("missing key")).Get()
	})
	out := f.Await(ctx)
	require.True(t, out.IsOk())
	assert.Equal(t, 2, out.Unwrap())
}
