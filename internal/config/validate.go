// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/statusreg/internal/status"
)

// Modbus per-request quantity limits.
const (
	maxReadBits      = 2000
	maxReadRegisters = 125
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values that Normalize fills in are accepted.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// STORE GEOMETRY
	// ------------------------------------------------------------

	banks := cfg.Status.Banks
	if banks == 0 {
		banks = status.DefaultBanks
	}
	if banks < 1 || banks > status.MaxBanks {
		return fmt.Errorf("status.banks must be in 1..%d, got %d", status.MaxBanks, cfg.Status.Banks)
	}

	// ------------------------------------------------------------
	// NAMED CONDITIONS (ID TABLE)
	// ------------------------------------------------------------

	names := make(map[string]struct{}, len(cfg.Conditions))

	// key = class | id
	slots := make(map[string]string, len(cfg.Conditions))

	for _, c := range cfg.Conditions {
		if c.Name == "" {
			return fmt.Errorf("condition at bank=%d bit=%d: name required", c.Bank, c.Bit)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("condition %q: duplicate name", c.Name)
		}
		names[c.Name] = struct{}{}

		cls, err := status.ParseClass(c.Class)
		if err != nil {
			return fmt.Errorf("condition %q: %w", c.Name, err)
		}
		if int(c.Bank) >= banks {
			return fmt.Errorf("condition %q: bank %d out of range (banks=%d)", c.Name, c.Bank, banks)
		}
		if c.Bit >= status.BitsPerBank {
			return fmt.Errorf("condition %q: bit %d out of range (max %d)", c.Name, c.Bit, status.BitsPerBank-1)
		}

		key := fmt.Sprintf("%s|%d", cls, status.Encode(c.Bank, c.Bit))
		if prev, exists := slots[key]; exists {
			return fmt.Errorf(
				"condition collision: class=%s bank=%d bit=%d used by %q and %q",
				cls, c.Bank, c.Bit, prev, c.Name,
			)
		}
		slots[key] = c.Name
	}

	// ------------------------------------------------------------
	// SOURCES
	// ------------------------------------------------------------

	sourceIDs := make(map[string]struct{}, len(cfg.Sources))

	// key = condition name; one input drives one condition
	driver := make(map[string]string)

	claim := func(cond, owner string) error {
		if _, ok := names[cond]; !ok {
			return fmt.Errorf("%s: unknown condition %q", owner, cond)
		}
		if prev, exists := driver[cond]; exists {
			return fmt.Errorf("condition %q driven by both %s and %s", cond, prev, owner)
		}
		driver[cond] = owner
		return nil
	}

	for _, s := range cfg.Sources {
		if s.ID == "" {
			return fmt.Errorf("source %q: id required", s.Endpoint)
		}
		if _, dup := sourceIDs[s.ID]; dup {
			return fmt.Errorf("source %q: duplicate id", s.ID)
		}
		sourceIDs[s.ID] = struct{}{}

		if s.Endpoint == "" {
			return fmt.Errorf("source %q: endpoint required", s.ID)
		}
		if s.TimeoutMs < 0 {
			return fmt.Errorf("source %q: timeout_ms must be >= 0", s.ID)
		}
		if s.Poll.IntervalMs < 0 {
			return fmt.Errorf("source %q: poll.interval_ms must be >= 0", s.ID)
		}
		if len(s.Reads) == 0 {
			return fmt.Errorf("source %q: at least one read required", s.ID)
		}

		if s.CommFault != "" {
			if err := claim(s.CommFault, fmt.Sprintf("source %q comm_fault", s.ID)); err != nil {
				return err
			}
		}

		for ri, r := range s.Reads {
			var limit, span int
			switch r.FC {
			case 1, 2:
				limit, span = maxReadBits, int(r.Quantity)
			case 3, 4:
				limit, span = maxReadRegisters, int(r.Quantity)*status.BitsPerBank
			default:
				return fmt.Errorf("source %q read %d: unsupported fc %d", s.ID, ri, r.FC)
			}

			if r.Quantity == 0 || int(r.Quantity) > limit {
				return fmt.Errorf("source %q read %d: quantity must be in 1..%d, got %d", s.ID, ri, limit, r.Quantity)
			}
			if int(r.Address)+int(r.Quantity) > 0x10000 {
				return fmt.Errorf("source %q read %d: range %d+%d exceeds address space", s.ID, ri, r.Address, r.Quantity)
			}

			for _, b := range r.Bind {
				if b.Offset < 0 || b.Offset >= span {
					return fmt.Errorf(
						"source %q read %d: offset %d outside block (0..%d)",
						s.ID, ri, b.Offset, span-1,
					)
				}
				if err := claim(b.Condition, fmt.Sprintf("source %q read %d offset %d", s.ID, ri, b.Offset)); err != nil {
					return err
				}
			}
		}
	}

	// ------------------------------------------------------------
	// PUBLISH (OPT-IN)
	// ------------------------------------------------------------

	if p := cfg.Publish; p != nil {
		if p.Endpoint == "" {
			return fmt.Errorf("publish: endpoint required")
		}
		switch p.Transport {
		case "", TransportModbus, TransportIngest:
		default:
			return fmt.Errorf("publish: unknown transport %q", p.Transport)
		}
		if p.IntervalMs < 0 || p.TimeoutMs < 0 {
			return fmt.Errorf("publish: interval_ms and timeout_ms must be >= 0")
		}

		// three class blocks of banks words + last-set word
		end := int(p.BaseAddress) + 3*(banks+1)
		if end > 0x10000 {
			return fmt.Errorf("publish: status blocks end at %d, beyond register address space", end)
		}
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}

	return nil
}
