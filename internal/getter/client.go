package getter

import (
	"context"
	"errors"
)

// Client is a cheap copyable handle bound to one Getter's worker. It is
// safe for concurrent use from any number of goroutines; all copies
// share the same mailbox.
type Client[T any] struct {
	g *Getter[T]
}

// Get fetches the item for id, transparently bundling the request with
// other concurrent callers into bulk calls. Retryable upstream failures
// are resubmitted up to the configured bound before being returned.
//
// Get panics if the owning Getter has been closed: requesting after
// shutdown is a defect in the caller, not a runtime condition.
func (c Client[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		item, err := c.submit(ctx, id)
		if err == nil {
			return item, nil
		}
		var status *StatusError
		if errors.As(err, &status) && status.Retryable() && attempt < c.g.maxRetries {
			c.g.logger.Warn().
				Str("id", id).
				Int("attempt", attempt+1).
				Int("maxAttempts", c.g.maxRetries).
				Int("status", status.Status).
				Msg("request failed, retrying")
			continue
		}
		return zero, err
	}
}

// submit enqueues one pending request and awaits its response channel.
// The mailbox send blocks when the queue is full, which is the
// backpressure against producers.
func (c Client[T]) submit(ctx context.Context, id string) (T, error) {
	var zero T
	out := make(chan result[T], 1)

	select {
	case c.g.mailbox <- pending[T]{id: id, out: out}:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case res, ok := <-out:
		if !ok {
			// channel closed without a response: the worker is gone
			return zero, &StatusError{Status: 0, ID: id, Message: "service unavailable: getter closed"}
		}
		return res.item, res.err
	case <-ctx.Done():
		// the worker still resolves the channel; nobody reads it
		return zero, ctx.Err()
	}
}
