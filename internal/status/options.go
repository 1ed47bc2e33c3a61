// internal/status/options.go
package status

import (
	"errors"
	"sync"
)

// Option configures a Store built by New.
type Option func(*Store) error

// WithCriticalSection installs cs around every word access.
func WithCriticalSection(cs CriticalSection) Option {
	return func(s *Store) error {
		if cs == nil {
			return errors.New("status: critical section cannot be nil")
		}
		s.cs = cs
		return nil
	}
}

// WithMutex installs a CriticalSection backed by a fresh sync.Mutex.
func WithMutex() Option {
	return WithCriticalSection(NewLockerSection(&sync.Mutex{}))
}

// WithErrorSink installs the sink that receives rejected operations.
func WithErrorSink(sink ErrorSink) Option {
	return func(s *Store) error {
		if sink == nil {
			return errors.New("status: error sink cannot be nil")
		}
		s.sink = sink
		return nil
	}
}

// WithDebugTrap makes bank and bit violations panic after they are reported.
// Development aid only.
func WithDebugTrap() Option {
	return func(s *Store) error {
		s.trap = true
		return nil
	}
}
