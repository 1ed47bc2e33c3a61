// internal/config/conditions.go
package config

import (
	"fmt"

	"github.com/tamzrod/statusreg/internal/status"
)

// Condition is a resolved ID table entry.
type Condition struct {
	Name  string
	Class status.Class
	ID    status.ID
}

// ConditionIndex resolves every named condition.
// Expects a validated configuration.
func (c *Config) ConditionIndex() (map[string]Condition, error) {
	out := make(map[string]Condition, len(c.Conditions))

	for _, cc := range c.Conditions {
		cls, err := status.ParseClass(cc.Class)
		if err != nil {
			return nil, fmt.Errorf("condition %q: %w", cc.Name, err)
		}
		out[cc.Name] = Condition{
			Name:  cc.Name,
			Class: cls,
			ID:    status.Encode(cc.Bank, cc.Bit),
		}
	}
	return out, nil
}
