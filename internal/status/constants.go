// internal/status/constants.go
package status

import (
	"fmt"
	"strings"
)

// Register geometry.
// These values define the ID encoding and MUST NOT be configurable.

// ---- BANK GEOMETRY ----

// BitsPerBank is the fixed number of status bits held by one bank word.
const BitsPerBank = 16

// DefaultBanks is the bank count used when none is configured.
const DefaultBanks = 12

// MaxBanks is the largest bank count that keeps every valid ID
// inside 16 bits and distinct from Unset.
const MaxBanks = 0xFFFF >> bankShift

// ---- ID LAYOUT ----

const (
	bankShift = 4
	bitMask   = 0x0F
)

// Unset is the last-set value of a class that has not been set since Init.
const Unset ID = 0xFFFF

// ---- CLASSES ----

// Class selects which bank array an operation targets.
// Classes are disjoint namespaces.
type Class uint8

const (
	Fault Class = iota
	Warning
	Info
)

const numClasses = 3

// Classes returns every class in declaration order.
func Classes() []Class {
	return []Class{Fault, Warning, Info}
}

func (c Class) valid() bool {
	return c < numClasses
}

func (c Class) String() string {
	switch c {
	case Fault:
		return "fault"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// ParseClass parses the names produced by Class.String.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fault":
		return Fault, nil
	case "warning", "warn":
		return Warning, nil
	case "info":
		return Info, nil
	default:
		return 0, fmt.Errorf("status: unknown class %q", s)
	}
}
