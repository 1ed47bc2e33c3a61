// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Client abstracts Modbus operations needed by the poller.
// The poller depends on geometry only.
type Client interface {
	ReadCoils(addr, qty uint16) ([]bool, error)              // FC 1
	ReadDiscreteInputs(addr, qty uint16) ([]bool, error)     // FC 2
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	ReadInputRegisters(addr, qty uint16) ([]uint16, error)   // FC 4
}

// ClientFactory makes ONE connection attempt per call.
type ClientFactory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	SourceID string
	Interval time.Duration
	Reads    []ReadBlock

	// CommFault is raised while polls fail and cleared on success (optional).
	CommFault *Target
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg     Config
	client  Client
	factory ClientFactory
}

// New creates a poller with immutable config.
// client may be nil when factory is set; the first poll connects.
func New(cfg Config, client Client, factory ClientFactory) (*Poller, error) {
	if cfg.SourceID == "" {
		return nil, errors.New("poller: source id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read block required")
	}
	if client == nil && factory == nil {
		return nil, errors.New("poller: client or factory required")
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// SourceID returns the configured source id.
func (p *Poller) SourceID() string {
	return p.cfg.SourceID
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
// On failure the client is discarded when a factory can replace it.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		SourceID: p.cfg.SourceID,
		At:       time.Now(),
	}

	if p.client == nil {
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: connect: %w", err)
			return res
		}
		p.client = c
	}

	blocks := make([]BlockResult, 0, len(p.cfg.Reads))

	for _, rb := range p.cfg.Reads {
		br, err := p.read(rb)
		if err != nil {
			res.Err = err
			p.discardClient()
			return res
		}
		blocks = append(blocks, br)
	}

	// Commit only if all reads succeeded
	res.Blocks = blocks
	return res
}

func (p *Poller) read(rb ReadBlock) (BlockResult, error) {
	br := BlockResult{FC: rb.FC, Address: rb.Address, Quantity: rb.Quantity}

	var err error
	switch rb.FC {
	case 1:
		br.Bits, err = p.client.ReadCoils(rb.Address, rb.Quantity)
	case 2:
		br.Bits, err = p.client.ReadDiscreteInputs(rb.Address, rb.Quantity)
	case 3:
		br.Registers, err = p.client.ReadHoldingRegisters(rb.Address, rb.Quantity)
	case 4:
		br.Registers, err = p.client.ReadInputRegisters(rb.Address, rb.Quantity)
	default:
		return br, fmt.Errorf("poller: unsupported function code %d", rb.FC)
	}
	if err != nil {
		return br, fmt.Errorf("poller: fc=%d addr=%d qty=%d: %w", rb.FC, rb.Address, rb.Quantity, err)
	}
	return br, nil
}

func (p *Poller) discardClient() {
	if p.factory == nil {
		return
	}
	if c, ok := p.client.(io.Closer); ok {
		_ = c.Close()
	}
	p.client = nil
}
