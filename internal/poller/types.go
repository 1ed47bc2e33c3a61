// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/statusreg/internal/status"
)

// Target is one status bit in one class.
type Target struct {
	ID    status.ID
	Class status.Class
}

// Binding ties one input bit of a read block to a status bit.
// FC 1/2: Offset is the coil index. FC 3/4: Offset is register*16 + bit.
type Binding struct {
	Offset int
	Target Target
	Invert bool
}

// ReadBlock describes one Modbus read geometry and the bits it drives.
type ReadBlock struct {
	FC       uint8
	Address  uint16
	Quantity uint16
	Bindings []Binding
}

// BlockResult is the raw result of a single read.
type BlockResult struct {
	FC       uint8
	Address  uint16
	Quantity uint16

	// Exactly one of these is used depending on FC.
	Bits      []bool   // FC 1,2
	Registers []uint16 // FC 3,4
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	SourceID string
	At       time.Time

	Blocks []BlockResult
	Err    error // non-nil means the poll cycle failed
}
