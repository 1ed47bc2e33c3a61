// internal/poller/runner.go
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Run starts the ticker loop and emits PollResult on the provided channel.
// One goroutine per source. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case out <- p.PollOnce():
			case <-ctx.Done():
				return
			}
		}
	}
}

// Runner drives a Poller and applies every result to a store.
// It is the producer side of the store: it runs concurrently with the
// main loop, so the store must be built with a real critical section.
type Runner struct {
	poller *Poller
	store  Setter
	logger *slog.Logger

	down bool
}

// NewRunner wires p to st. A nil logger uses slog.Default().
func NewRunner(p *Poller, st Setter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		poller: p,
		store:  st,
		logger: logger.With("source", p.SourceID()),
	}
}

// Run blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	results := make(chan PollResult)
	go r.poller.Run(ctx, results)

	for {
		select {
		case <-ctx.Done():
			return
		case res := <-results:
			_ = r.handle(res)
		}
	}
}

// handle applies one result. A panic while applying (for example a debug
// trap on a bad binding) is logged with a correlation id and returned.
func (r *Runner) handle(res PollResult) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			correlationID := uuid.NewString()

			r.logger.Error("apply panic",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", rec),
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("poller: apply panic (correlation_id: %s)", correlationID)
		}
	}()

	// log transitions only
	switch {
	case res.Err != nil && !r.down:
		r.down = true
		r.logger.Warn("source down", "error", res.Err)
	case res.Err == nil && r.down:
		r.down = false
		r.logger.Info("source recovered")
	}

	r.poller.Apply(res, r.store)
	return nil
}
