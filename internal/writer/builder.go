// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	cfg "github.com/tamzrod/statusreg/internal/config"
	"github.com/tamzrod/statusreg/internal/writer/ingest"
	wmodbus "github.com/tamzrod/statusreg/internal/writer/modbus"
)

// BuildPlan converts the publish config into a Plan.
// Assumes config has already passed validation and normalization.
func BuildPlan(p *cfg.PublishConfig, numBanks int) (Plan, error) {
	if p == nil {
		return Plan{}, errors.New("writer: publish config required")
	}
	return Plan{
		Endpoint:    p.Endpoint,
		UnitID:      p.UnitID,
		BaseAddress: p.BaseAddress,
		NumBanks:    numBanks,
	}, nil
}

// BuildEndpointClient creates the client for the configured transport.
// The returned closer releases it.
func BuildEndpointClient(p *cfg.PublishConfig) (endpointClient, func() error, error) {
	timeout := time.Duration(p.TimeoutMs) * time.Millisecond

	switch p.Transport {
	case cfg.TransportModbus, "":
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{Endpoint: p.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{Endpoint: p.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown transport %q", p.Transport)
	}
}

// Build wires a Publisher for store from the publish config.
func Build(p *cfg.PublishConfig, store Capturer, numBanks int, logger *slog.Logger) (*Publisher, func() error, error) {
	plan, err := BuildPlan(p, numBanks)
	if err != nil {
		return nil, nil, err
	}

	cli, closeClient, err := BuildEndpointClient(p)
	if err != nil {
		return nil, nil, err
	}

	sw, err := NewStatusWriter(plan, cli)
	if err != nil {
		_ = closeClient()
		return nil, nil, err
	}

	pub, err := NewPublisher(store, sw, time.Duration(p.IntervalMs)*time.Millisecond, logger)
	if err != nil {
		_ = closeClient()
		return nil, nil, err
	}
	return pub, closeClient, nil
}
