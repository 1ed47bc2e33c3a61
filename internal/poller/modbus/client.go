// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Client implements poller.Client using Modbus TCP.
// This adapter is geometry-only: it issues reads and unpacks raw responses.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("modbus client: connect %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- poller.Client interface ----

func (c *Client) ReadCoils(addr, qty uint16) ([]bool, error) {
	if qty == 0 {
		return nil, nil
	}
	data, err := c.client.ReadCoils(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(data, int(qty)), nil
}

func (c *Client) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	if qty == 0 {
		return nil, nil
	}
	data, err := c.client.ReadDiscreteInputs(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(data, int(qty)), nil
}

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if qty == 0 {
		return nil, nil
	}
	data, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(data, int(qty))
}

func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	if qty == 0 {
		return nil, nil
	}
	data, err := c.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(data, int(qty))
}

// ---- helpers (pure geometry) ----

// unpackBits expands LSB-first packed coils. Missing bytes read as false.
func unpackBits(data []byte, count int) []bool {
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		byteIdx := i / 8
		bitIdx := i % 8
		if byteIdx >= len(data) {
			continue
		}
		out[i] = data[byteIdx]&(1<<bitIdx) != 0
	}
	return out
}

// unpackRegisters decodes big-endian registers.
func unpackRegisters(data []byte, count int) ([]uint16, error) {
	if len(data) < 2*count {
		return nil, fmt.Errorf("modbus: short register payload: got %d bytes, want %d", len(data), 2*count)
	}
	out := make([]uint16, count)
	for i := 0; i < count; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out, nil
}
