// internal/status/critical.go
package status

import "sync"

// CriticalSection is the mutual exclusion the Store wraps around every
// word access. Enter and Exit must be short and must not block indefinitely.
type CriticalSection interface {
	Enter()
	Exit()
}

// NopCriticalSection performs no exclusion.
// Safe only when a single goroutine uses the Store.
type NopCriticalSection struct{}

func (NopCriticalSection) Enter() {}
func (NopCriticalSection) Exit()  {}

// LockerSection adapts a sync.Locker.
type LockerSection struct {
	l sync.Locker
}

// NewLockerSection returns a CriticalSection backed by l.
func NewLockerSection(l sync.Locker) *LockerSection {
	return &LockerSection{l: l}
}

func (s *LockerSection) Enter() { s.l.Lock() }
func (s *LockerSection) Exit()  { s.l.Unlock() }
