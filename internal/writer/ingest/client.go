// internal/writer/ingest/client.go
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// Raw Ingest v1 frame (LOCKED):
//
//	0-1  magic "RI"
//	2    version 0x01
//	3    area (3 = holding registers)
//	4-5  unit id
//	6-7  start address
//	8-9  register count
//	10+  registers, big-endian
//
// The server answers with one status byte.
const (
	headerLen = 10

	magic     uint16 = 0x5249 // "RI"
	versionV1 byte   = 0x01

	areaHoldingRegisters byte = 3

	respOK       byte = 0x00
	respRejected byte = 0x01

	// one frame never carries more than a Modbus write would
	maxFrameRegisters = 123
)

var ErrRejected = errors.New("writer ingest: rejected")

// EndpointClient delivers status blocks over Raw Ingest v1.
// Stateless: one frame, one connection.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{endpoint: cfg.Endpoint, timeout: cfg.Timeout}, nil
}

// Close is a no-op; connections never outlive a frame.
func (c *EndpointClient) Close() error { return nil }

// WriteRegisters splits regs into frames and delivers them in order.
// The first failing frame aborts the rest.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	for len(regs) > 0 {
		n := min(len(regs), maxFrameRegisters)
		if err := c.deliver(encodeFrame(unitID, addr, regs[:n])); err != nil {
			return fmt.Errorf("writer ingest: unit=%d addr=%d count=%d: %w", unitID, addr, n, err)
		}
		addr += uint16(n)
		regs = regs[n:]
	}
	return nil
}

func (c *EndpointClient) deliver(frame []byte) error {
	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return err
	}

	// net.Conn.Write returns an error on any short write.
	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	var resp [1]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return fmt.Errorf("read status: %w", err)
	}

	switch resp[0] {
	case respOK:
		return nil
	case respRejected:
		return ErrRejected
	default:
		return fmt.Errorf("unknown status 0x%02x", resp[0])
	}
}

func encodeFrame(unitID uint8, addr uint16, regs []uint16) []byte {
	frame := make([]byte, headerLen+2*len(regs))

	binary.BigEndian.PutUint16(frame[0:2], magic)
	frame[2] = versionV1
	frame[3] = areaHoldingRegisters
	binary.BigEndian.PutUint16(frame[4:6], uint16(unitID))
	binary.BigEndian.PutUint16(frame[6:8], addr)
	binary.BigEndian.PutUint16(frame[8:10], uint16(len(regs)))

	for i, r := range regs {
		binary.BigEndian.PutUint16(frame[headerLen+2*i:], r)
	}
	return frame
}
