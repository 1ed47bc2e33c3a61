// internal/status/snapshot.go
package status

// Snapshot is a consistent copy of one class: every bank word and the
// last-set ID, captured under a single critical section.
// It contains no logic and no memory of the past beyond that instant.
type Snapshot struct {
	Class   Class
	Words   []uint16
	LastSet ID
}

// IsSet reports whether id is set in the snapshot.
// IDs outside the captured banks report false.
func (s Snapshot) IsSet(id ID) bool {
	bank := int(id.Bank())
	if bank >= len(s.Words) {
		return false
	}
	return s.Words[bank]&(1<<id.Bit()) != 0
}

// Active returns every set ID in bank then bit order.
func (s Snapshot) Active() []ID {
	var ids []ID
	for bank, w := range s.Words {
		for bit := uint16(0); bit < BitsPerBank; bit++ {
			if w&(1<<bit) != 0 {
				ids = append(ids, Encode(uint16(bank), bit))
			}
		}
	}
	return ids
}
