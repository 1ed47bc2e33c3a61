// internal/status/errors.go
package status

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorKind tags the reason an operation was rejected.
type ErrorKind uint8

const (
	// InvalidID means the class selector was not recognized.
	InvalidID ErrorKind = iota
	// InvalidBank means the decoded bank is not below the bank count.
	InvalidBank
	// InvalidBit means the decoded bit is not below BitsPerBank.
	InvalidBit
	// NullPointer means a snapshot destination was nil or empty.
	NullPointer
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidID:
		return "invalid_id"
	case InvalidBank:
		return "invalid_bank"
	case InvalidBit:
		return "invalid_bit"
	case NullPointer:
		return "null_pointer"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(k))
	}
}

var (
	ErrInvalidID        = errors.New("status: invalid id")
	ErrInvalidBank      = errors.New("status: invalid bank")
	ErrInvalidBit       = errors.New("status: invalid bit")
	ErrNullPointer      = errors.New("status: null destination")
	ErrInvalidBankCount = errors.New("status: invalid bank count")
)

// Err returns kind as an error carrying the offending id.
func (k ErrorKind) Err(id ID) error {
	return &Error{Kind: k, ID: id}
}

// Error is the error form of a rejected operation.
// It unwraps to the matching sentinel, so errors.Is works on it.
type Error struct {
	Kind ErrorKind
	ID   ID
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (id=0x%04X)", e.Unwrap(), uint16(e.ID))
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case InvalidBank:
		return ErrInvalidBank
	case InvalidBit:
		return ErrInvalidBit
	case NullPointer:
		return ErrNullPointer
	default:
		return ErrInvalidID
	}
}

// ErrorSink receives rejected operations synchronously.
// Implementations must not call back into the Store.
type ErrorSink interface {
	StatusError(kind ErrorKind, id ID)
}

// ErrorSinkFunc adapts a plain function to ErrorSink.
type ErrorSinkFunc func(kind ErrorKind, id ID)

func (f ErrorSinkFunc) StatusError(kind ErrorKind, id ID) {
	f(kind, id)
}

// NopSink discards every report.
type NopSink struct{}

func (NopSink) StatusError(ErrorKind, ID) {}

// LogSink logs every report at warn level.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) StatusError(kind ErrorKind, id ID) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("status operation rejected",
		"kind", kind.String(),
		"id", fmt.Sprintf("0x%04X", uint16(id)),
	)
}
