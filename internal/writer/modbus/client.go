// internal/writer/modbus/client.go
package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// EndpointClient is a single TCP connection to one status memory endpoint.
// It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &EndpointClient{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes holding registers (FC 16).
// goburrow reconnects on the next request after a transport error.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if len(regs) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	for len(regs) > 0 {
		n := min(len(regs), maxWriteRegisters)
		if _, err := c.client.WriteMultipleRegisters(addr, uint16(n), packRegisters(regs[:n])); err != nil {
			return fmt.Errorf("writer modbus: unit=%d addr=%d count=%d: %w", unitID, addr, n, err)
		}
		addr += uint16(n)
		regs = regs[n:]
	}
	return nil
}

// FC 16 carries at most 123 registers per request.
const maxWriteRegisters = 123

func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}
