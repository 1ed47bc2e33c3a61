// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/statusreg/internal/status"
)

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"

	defaultIntervalMs = 1000
	defaultTimeoutMs  = 1000
	defaultLogLevel   = "info"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Status.Banks == 0 {
		cfg.Status.Banks = status.DefaultBanks
	}

	for i := range cfg.Conditions {
		c := &cfg.Conditions[i]
		c.Class = strings.ToLower(strings.TrimSpace(c.Class))
		if c.Class == "warn" {
			c.Class = "warning"
		}
	}

	for i := range cfg.Sources {
		s := &cfg.Sources[i]
		if s.TimeoutMs == 0 {
			s.TimeoutMs = defaultTimeoutMs
		}
		if s.Poll.IntervalMs == 0 {
			s.Poll.IntervalMs = defaultIntervalMs
		}
	}

	if p := cfg.Publish; p != nil {
		if p.Transport == "" {
			p.Transport = TransportModbus
		}
		if p.IntervalMs == 0 {
			p.IntervalMs = defaultIntervalMs
		}
		if p.TimeoutMs == 0 {
			p.TimeoutMs = defaultTimeoutMs
		}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
