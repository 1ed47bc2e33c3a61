// internal/writer/publisher.go
package writer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tamzrod/statusreg/internal/status"
)

// Capturer is the part of *status.Store the publisher reads.
type Capturer interface {
	Capture(cls status.Class) status.Snapshot
}

// Publisher periodically delivers every class of a store.
type Publisher struct {
	store    Capturer
	writer   StatusWriter
	interval time.Duration
	logger   *slog.Logger

	failing bool
}

// NewPublisher wires store to w. A nil logger uses slog.Default().
func NewPublisher(store Capturer, w StatusWriter, interval time.Duration, logger *slog.Logger) (*Publisher, error) {
	if store == nil || w == nil {
		return nil, errors.New("publisher: store and writer required")
	}
	if interval <= 0 {
		return nil, errors.New("publisher: interval must be > 0")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{store: store, writer: w, interval: interval, logger: logger}, nil
}

// PublishOnce captures and writes every class.
// A failing class does not stop the others.
func (p *Publisher) PublishOnce() error {
	var errs []error
	for _, cls := range status.Classes() {
		if err := p.writer.WriteStatus(p.store.Capture(cls)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run publishes immediately, then on every tick, until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Publisher) tick() {
	err := p.PublishOnce()

	// log transitions only
	switch {
	case err != nil && !p.failing:
		p.failing = true
		p.logger.Warn("status publish failed", "error", err)
	case err == nil && p.failing:
		p.failing = false
		p.logger.Info("status publish recovered")
	}
}
