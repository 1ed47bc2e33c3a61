// Package status is a fixed-size register store for fault, warning and
// info condition bits.
//
// Each class owns NumBanks 16-bit words. A condition is addressed by an ID
// produced by Encode(bank, bit):
//
//	id = bank<<4 | bit&0xF
//
// A bank too wide for the 12-bit field encodes as Unset and is rejected.
//
// The layout is protocol-locked so externally generated ID tables keep
// working.
//
// A Store is caller-owned; independent subsystems use independent Stores.
// All word accesses run inside the injected CriticalSection, so a Store
// built WithMutex may be shared by producer goroutines and the main loop.
// Invalid input never panics (unless WithDebugTrap is set) and never mutates
// state: it is reported to the ErrorSink and the operation returns a safe
// default.
package status
