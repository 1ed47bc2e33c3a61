// internal/poller/apply.go
package poller

import "github.com/tamzrod/statusreg/internal/status"

// Setter is the part of *status.Store a poller drives.
type Setter interface {
	Set(id status.ID, cls status.Class)
	Clear(id status.ID, cls status.Class)
}

// Apply writes one poll result into st.
//
// Success: every bound bit is set when its input is active (or inactive,
// when inverted) and cleared otherwise; the comm fault is cleared.
// Failure: bound bits are left as they were; the comm fault is set.
func (p *Poller) Apply(res PollResult, st Setter) {
	cf := p.cfg.CommFault

	if res.Err != nil {
		if cf != nil {
			st.Set(cf.ID, cf.Class)
		}
		return
	}

	for i, rb := range p.cfg.Reads {
		if i >= len(res.Blocks) {
			break
		}
		block := res.Blocks[i]

		for _, b := range rb.Bindings {
			active, ok := bitAt(block, b.Offset)
			if !ok {
				continue
			}
			if active != b.Invert {
				st.Set(b.Target.ID, b.Target.Class)
			} else {
				st.Clear(b.Target.ID, b.Target.Class)
			}
		}
	}

	if cf != nil {
		st.Clear(cf.ID, cf.Class)
	}
}

// bitAt returns the input bit at offset; ok is false past the block.
func bitAt(b BlockResult, offset int) (active, ok bool) {
	if offset < 0 {
		return false, false
	}

	switch b.FC {
	case 1, 2:
		if offset >= len(b.Bits) {
			return false, false
		}
		return b.Bits[offset], true
	case 3, 4:
		reg := offset / status.BitsPerBank
		if reg >= len(b.Registers) {
			return false, false
		}
		return b.Registers[reg]&(1<<(offset%status.BitsPerBank)) != 0, true
	default:
		return false, false
	}
}
