package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyChain-Inc/tc-ir/library"
)

func TestRateLimitedHandlerDelegatesWithinBurst(t *testing.T) {
	limited := library.NewRateLimitedHandler(helloHandler{}, 1, 2)

	out, err := limited.Get(context.Background(), nil, "TinyChain")
	require.NoError(t, err)
	assert.Equal(t, "Hello, TinyChain!", out)
}

func TestRateLimitedHandlerBlocksPastBurst(t *testing.T) {
	limited := library.NewRateLimitedHandler(helloHandler{}, 1, 1)

	// One request per second with a burst of one: the first request spends the
	// only token, so the second would have to wait about a second, past ctx's
	// deadline, and the limiter refuses it instead of admitting it.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := limited.Get(context.Background(), nil, "first")
	require.NoError(t, err)

	_, err = limited.Get(ctx, nil, "second")
	require.Error(t, err)
}

func TestRateLimitedHandlerReportsMethodNotAllowed(t *testing.T) {
	limited := library.NewRateLimitedHandler(helloHandler{}, 1, 2)

	_, err := limited.Post(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestRateLimitedHandlerTypeNameDelegates(t *testing.T) {
	limited := library.NewRateLimitedHandler(helloHandler{}, 1, 2)
	assert.Equal(t, "helloHandler", limited.TypeName())
}
