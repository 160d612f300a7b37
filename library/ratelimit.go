package library

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/txn"
)

// RateLimitedHandler wraps a Handler with a process-local token bucket,
// admitting at most Limit requests per second (with Burst capacity for
// bursts) across all verbs before delegating to the wrapped Handler. Unlike
// an adaptive limiter, the budget here is fixed by the caller rather than
// adjusted from provider backoff signals.
type RateLimitedHandler struct {
	next    Handler
	limiter *rate.Limiter
}

// NewRateLimitedHandler wraps next with a limiter admitting up to
// requestsPerSecond requests per second, with burst capacity for burst
// requests in excess of that steady rate.
func NewRateLimitedHandler(next Handler, requestsPerSecond float64, burst int) *RateLimitedHandler {
	return &RateLimitedHandler{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// TypeName delegates to the wrapped Handler.
func (h *RateLimitedHandler) TypeName() string { return h.next.TypeName() }

// wait blocks until the limiter admits a single request, or ctx is done.
func (h *RateLimitedHandler) wait(ctx context.Context) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return id.Internal.Err("rate limit exceeded for handler %s: %s", h.next.TypeName(), err)
	}
	return nil
}

// Get admits the request against the limiter, then delegates to next if it
// implements Getter.
func (h *RateLimitedHandler) Get(ctx context.Context, t txn.Transaction, key any) (any, error) {
	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	g, ok := h.next.(Getter)
	if !ok {
		return nil, methodNotAllowed(Get, h.next)
	}
	return g.Get(ctx, t, key)
}

// Put admits the request against the limiter, then delegates to next if it
// implements Putter.
func (h *RateLimitedHandler) Put(ctx context.Context, t txn.Transaction, key, value any) error {
	if err := h.wait(ctx); err != nil {
		return err
	}
	p, ok := h.next.(Putter)
	if !ok {
		return methodNotAllowed(Put, h.next)
	}
	return p.Put(ctx, t, key, value)
}

// Post admits the request against the limiter, then delegates to next if it
// implements Poster.
func (h *RateLimitedHandler) Post(ctx context.Context, t txn.Transaction, params any) (any, error) {
	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	p, ok := h.next.(Poster)
	if !ok {
		return nil, methodNotAllowed(Post, h.next)
	}
	return p.Post(ctx, t, params)
}

// Delete admits the request against the limiter, then delegates to next if
// it implements Deleter.
func (h *RateLimitedHandler) Delete(ctx context.Context, t txn.Transaction, key any) error {
	if err := h.wait(ctx); err != nil {
		return err
	}
	d, ok := h.next.(Deleter)
	if !ok {
		return methodNotAllowed(Delete, h.next)
	}
	return d.Delete(ctx, t, key)
}

var (
	_ Getter  = (*RateLimitedHandler)(nil)
	_ Putter  = (*RateLimitedHandler)(nil)
	_ Poster  = (*RateLimitedHandler)(nil)
	_ Deleter = (*RateLimitedHandler)(nil)
)
