// internal/writer/types.go
package writer

import "github.com/tamzrod/statusreg/internal/status"

// Status block layout (protocol-locked).
//
// One block per class, in Fault, Warning, Info order, contiguous from
// BaseAddress. Inside a block:
//
//	word 0 .. NumBanks-1   bank words
//	word NumBanks          last-set ID (0xFFFF when unset)

// Plan is the fully-built publish plan.
type Plan struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16
	NumBanks    int
}

// BlockSize returns the number of registers of one class block.
func (p Plan) BlockSize() int {
	return p.NumBanks + 1
}

// ClassBase returns the first register address of cls's block.
func (p Plan) ClassBase(cls status.Class) uint16 {
	return p.BaseAddress + uint16(int(cls)*p.BlockSize())
}

// endpointClient is the exact contract the writer uses.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
