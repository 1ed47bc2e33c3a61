// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/statusreg/internal/config"
	pmodbus "github.com/tamzrod/statusreg/internal/poller/modbus"
)

// Build constructs a Poller for one source and resolves its bindings.
// No connection is made here: the first tick dials, so a source that is
// down at startup raises its comm fault instead of stopping the daemon.
// Expects a validated, normalized configuration.
func Build(s cfg.SourceConfig, conditions map[string]cfg.Condition) (*Poller, error) {
	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		c, err := pmodbus.New(pmodbus.Config{
			Endpoint: s.Endpoint,
			UnitID:   s.UnitID,
			Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	resolve := func(name string) (Target, error) {
		c, ok := conditions[name]
		if !ok {
			return Target{}, fmt.Errorf("poller: source %q: unknown condition %q", s.ID, name)
		}
		return Target{ID: c.ID, Class: c.Class}, nil
	}

	reads := make([]ReadBlock, 0, len(s.Reads))
	for _, r := range s.Reads {
		rb := ReadBlock{
			FC:       r.FC,
			Address:  r.Address,
			Quantity: r.Quantity,
		}
		for _, b := range r.Bind {
			tgt, err := resolve(b.Condition)
			if err != nil {
				return nil, err
			}
			rb.Bindings = append(rb.Bindings, Binding{Offset: b.Offset, Target: tgt, Invert: b.Invert})
		}
		reads = append(reads, rb)
	}

	pc := Config{
		SourceID: s.ID,
		Interval: time.Duration(s.Poll.IntervalMs) * time.Millisecond,
		Reads:    reads,
	}
	if s.CommFault != "" {
		tgt, err := resolve(s.CommFault)
		if err != nil {
			return nil, err
		}
		pc.CommFault = &tgt
	}

	return New(pc, nil, factory)
}
