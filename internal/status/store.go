// internal/status/store.go
package status

import "fmt"

// Store holds the fault, warning and info bank arrays of one subsystem.
//
// Every word access happens inside the configured CriticalSection.
// Invalid input is reported to the ErrorSink before the section is
// entered and leaves the Store untouched.
type Store struct {
	numBanks int
	banks    [numClasses][]uint16
	last     [numClasses]ID

	cs   CriticalSection
	sink ErrorSink
	trap bool
}

// New allocates a Store with numBanks words per class and initializes it.
// Defaults: no-op critical section, no-op error sink, no debug trap.
func New(numBanks int, opts ...Option) (*Store, error) {
	if numBanks < 1 || numBanks > MaxBanks {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidBankCount, numBanks, MaxBanks)
	}

	s := &Store{
		numBanks: numBanks,
		cs:       NopCriticalSection{},
		sink:     NopSink{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	// One backing array for all classes; nothing is allocated after this.
	words := make([]uint16, numClasses*numBanks)
	for c := range s.banks {
		s.banks[c] = words[c*numBanks : (c+1)*numBanks : (c+1)*numBanks]
	}

	s.Init()
	return s, nil
}

// Init zeroes every bank word and resets every last-set ID to Unset.
// Re-callable at any time.
func (s *Store) Init() {
	s.cs.Enter()
	defer s.cs.Exit()

	for c := range s.banks {
		clear(s.banks[c])
		s.last[c] = Unset
	}
}

// SetErrorSink replaces the active sink. nil installs NopSink.
// Not synchronized: register at startup.
func (s *Store) SetErrorSink(sink ErrorSink) {
	if sink == nil {
		sink = NopSink{}
	}
	s.sink = sink
}

// NumBanks returns the number of words per class.
func (s *Store) NumBanks() int {
	return s.numBanks
}

// Valid reports whether id addresses a bit of this Store.
func (s *Store) Valid(id ID) bool {
	return id.Valid(s.numBanks)
}

// ---- mutators ----

// Set raises id in cls and records it as the class's last-set ID.
func (s *Store) Set(id ID, cls Class) {
	bank, mask, ok := s.locate(id, cls)
	if !ok {
		return
	}

	s.cs.Enter()
	defer s.cs.Exit()

	s.banks[cls][bank] |= mask
	s.last[cls] = id
}

// Clear lowers id in cls. The last-set ID is not touched.
func (s *Store) Clear(id ID, cls Class) {
	bank, mask, ok := s.locate(id, cls)
	if !ok {
		return
	}

	s.cs.Enter()
	defer s.cs.Exit()

	s.banks[cls][bank] &^= mask
}

// Toggle flips id in cls. The last-set ID is not touched.
func (s *Store) Toggle(id ID, cls Class) {
	bank, mask, ok := s.locate(id, cls)
	if !ok {
		return
	}

	s.cs.Enter()
	defer s.cs.Exit()

	s.banks[cls][bank] ^= mask
}

// ClearAll zeroes every word of cls. The last-set ID is not touched.
func (s *Store) ClearAll(cls Class) {
	if !s.checkClass(cls, Unset) {
		return
	}

	s.cs.Enter()
	defer s.cs.Exit()

	clear(s.banks[cls])
}

// ---- queries ----

// IsSet reports whether id is raised in cls. Invalid input reports false.
func (s *Store) IsSet(id ID, cls Class) bool {
	bank, mask, ok := s.locate(id, cls)
	if !ok {
		return false
	}

	s.cs.Enter()
	defer s.cs.Exit()

	return s.banks[cls][bank]&mask != 0
}

// Any reports whether any bit of cls is raised.
// Banks are scanned first to last.
func (s *Store) Any(cls Class) bool {
	if !s.checkClass(cls, Unset) {
		return false
	}

	s.cs.Enter()
	defer s.cs.Exit()

	for _, w := range s.banks[cls] {
		if w != 0 {
			return true
		}
	}
	return false
}

// LastSet returns the most recently set ID of cls, or Unset.
func (s *Store) LastSet(cls Class) ID {
	if !s.checkClass(cls, Unset) {
		return Unset
	}

	s.cs.Enter()
	defer s.cs.Exit()

	return s.last[cls]
}

// Snapshot copies min(len(dst), NumBanks()) words of cls into dst and
// returns the number copied. A nil or empty dst is reported as NullPointer.
func (s *Store) Snapshot(cls Class, dst []uint16) int {
	if !s.checkClass(cls, Unset) {
		return 0
	}
	if len(dst) == 0 {
		s.report(NullPointer, Unset)
		return 0
	}

	s.cs.Enter()
	defer s.cs.Exit()

	return copy(dst, s.banks[cls])
}

// Capture returns a freshly allocated Snapshot of cls.
// Words and LastSet are read under the same critical section.
func (s *Store) Capture(cls Class) Snapshot {
	snap := Snapshot{Class: cls, LastSet: Unset}
	if !s.checkClass(cls, Unset) {
		return snap
	}

	words := make([]uint16, s.numBanks)

	s.cs.Enter()
	defer s.cs.Exit()

	copy(words, s.banks[cls])
	snap.Words = words
	snap.LastSet = s.last[cls]
	return snap
}

// ---- validation ----

// locate validates cls and id and returns the target bank and bit mask.
// Reports and returns ok=false on failure; never enters the critical section.
func (s *Store) locate(id ID, cls Class) (bank int, mask uint16, ok bool) {
	if !s.checkClass(cls, id) {
		return 0, 0, false
	}

	bank = int(id.Bank())
	if bank >= s.numBanks {
		s.report(InvalidBank, id)
		return 0, 0, false
	}

	bit := id.Bit()
	if bit >= BitsPerBank {
		s.report(InvalidBit, id)
		return 0, 0, false
	}

	return bank, 1 << bit, true
}

func (s *Store) checkClass(cls Class, id ID) bool {
	if cls.valid() {
		return true
	}
	s.report(InvalidID, id)
	return false
}

func (s *Store) report(kind ErrorKind, id ID) {
	s.sink.StatusError(kind, id)

	if s.trap && (kind == InvalidBank || kind == InvalidBit) {
		panic(kind.Err(id))
	}
}
