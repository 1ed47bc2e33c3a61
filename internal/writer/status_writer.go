// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"

	"github.com/tamzrod/statusreg/internal/status"
)

// StatusWriter is the delivery-only contract for class snapshots.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// classState is what the writer believes the endpoint currently holds.
type classState struct {
	needFull bool
	last     []uint16
}

// blockWriter is the concrete implementation used by statusd.
type blockWriter struct {
	plan  Plan
	cli   endpointClient
	state [3]classState
}

// NewStatusWriter builds a writer for plan over cli.
func NewStatusWriter(plan Plan, cli endpointClient) (StatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}
	if plan.NumBanks < 1 || plan.NumBanks > status.MaxBanks {
		return nil, fmt.Errorf("status writer: bank count %d out of range", plan.NumBanks)
	}
	if int(plan.BaseAddress)+len(status.Classes())*plan.BlockSize() > 0x10000 {
		return nil, fmt.Errorf("status writer: blocks from %d do not fit the register space", plan.BaseAddress)
	}

	w := &blockWriter{plan: plan, cli: cli}
	for i := range w.state {
		// full re-assert on first write
		w.state[i].needFull = true
	}
	return w, nil
}

// WriteStatus delivers one class snapshot into status memory.
// On any write failure, the next call re-asserts the full block.
func (w *blockWriter) WriteStatus(s status.Snapshot) error {
	if int(s.Class) >= len(w.state) {
		return fmt.Errorf("status writer: unknown class %v", s.Class)
	}
	if len(s.Words) != w.plan.NumBanks {
		return fmt.Errorf("status writer: %v snapshot has %d words, want %d", s.Class, len(s.Words), w.plan.NumBanks)
	}

	st := &w.state[s.Class]
	base := w.plan.ClassBase(s.Class)
	regs := blockRegs(s)

	// ------------------------------------------------------------
	// Full block write (re-assert)
	// ------------------------------------------------------------
	if st.needFull {
		if err := w.cli.WriteRegisters(w.plan.UnitID, base, regs); err != nil {
			return fmt.Errorf("status writer: %v full block write failed: %w", s.Class, err)
		}
		st.needFull = false
		st.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per run of changed words
	// ------------------------------------------------------------
	var errs []error

	for _, r := range changedRuns(st.last, regs) {
		if err := w.cli.WriteRegisters(w.plan.UnitID, base+uint16(r.start), regs[r.start:r.end]); err != nil {
			errs = append(errs, fmt.Errorf("words %d-%d: %w", r.start, r.end-1, err))
			continue
		}
		copy(st.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next call.
		st.needFull = true
		return fmt.Errorf("status writer: %v: %w", s.Class, errors.Join(errs...))
	}
	return nil
}

// blockRegs renders a snapshot in block layout.
func blockRegs(s status.Snapshot) []uint16 {
	regs := make([]uint16, len(s.Words)+1)
	copy(regs, s.Words)
	regs[len(s.Words)] = uint16(s.LastSet)
	return regs
}

type run struct {
	start, end int // [start, end)
}

// changedRuns returns maximal runs of indices where prev and next differ.
func changedRuns(prev, next []uint16) []run {
	var runs []run
	start := -1

	for i := range next {
		differs := i >= len(prev) || prev[i] != next[i]
		switch {
		case differs && start < 0:
			start = i
		case !differs && start >= 0:
			runs = append(runs, run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{start, len(next)})
	}
	return runs
}
