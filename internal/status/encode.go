// internal/status/encode.go
package status

import "fmt"

// ID is an encoded (bank, bit) pair.
// Layout is protocol-locked: bank in the high 12 bits, bit in the low 4.
type ID uint16

// Encode combines bank and bit into one ID.
// Bits above 15 are masked off. A bank that does not fit the 12-bit field
// encodes as Unset, which no store accepts, so it is never shifted into
// a different valid ID.
func Encode(bank, bit uint16) ID {
	if bank >= MaxBanks {
		return Unset
	}
	return ID(bank<<bankShift | bit&bitMask)
}

// Bank returns the bank index of id.
func (id ID) Bank() uint16 {
	return uint16(id) >> bankShift
}

// Bit returns the bit index of id within its bank.
func (id ID) Bit() uint16 {
	return uint16(id) & bitMask
}

// Valid reports whether id addresses a bit in a store with numBanks banks.
func (id ID) Valid(numBanks int) bool {
	return int(id.Bank()) < numBanks && id.Bit() < BitsPerBank
}

func (id ID) String() string {
	if id == Unset {
		return "unset"
	}
	return fmt.Sprintf("%d:%d", id.Bank(), id.Bit())
}
