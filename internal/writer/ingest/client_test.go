package ingest

import (
	"encoding/binary"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer accepts frames and answers every one with reply.
type fakeServer struct {
	ln    net.Listener
	reply byte

	mu     sync.Mutex
	frames [][]byte
}

func startServer(t *testing.T, reply byte) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln, reply: reply}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			s.serve(conn)
		}
	}()
	return s
}

func (s *fakeServer) serve(conn net.Conn) {
	defer conn.Close()

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(conn, header); err != nil {
		return
	}
	count := binary.BigEndian.Uint16(header[8:10])
	payload := make([]byte, 2*int(count))
	if _, err := io.ReadFull(conn, payload); err != nil {
		return
	}

	s.mu.Lock()
	s.frames = append(s.frames, append(header, payload...))
	s.mu.Unlock()

	_, _ = conn.Write([]byte{s.reply})
}

func (s *fakeServer) received() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.frames...)
}

func TestEncodeFrame(t *testing.T) {
	frame := encodeFrame(7, 0x0102, []uint16{0xABCD, 0x0001})

	assert.Equal(t, []byte{
		'R', 'I', 0x01, 0x03,
		0x00, 0x07,
		0x01, 0x02,
		0x00, 0x02,
		0xAB, 0xCD, 0x00, 0x01,
	}, frame)
}

func TestWriteRegisters_Delivers(t *testing.T) {
	srv := startServer(t, respOK)

	c, err := NewEndpointClient(Config{Endpoint: srv.ln.Addr().String(), Timeout: time.Second})
	require.NoError(t, err)

	require.NoError(t, c.WriteRegisters(1, 40, []uint16{0x8001, 0xFFFF}))

	frames := srv.received()
	require.Len(t, frames, 1)
	assert.Equal(t, encodeFrame(1, 40, []uint16{0x8001, 0xFFFF}), frames[0])
}

func TestWriteRegisters_SplitsLargeBlocks(t *testing.T) {
	srv := startServer(t, respOK)

	c, err := NewEndpointClient(Config{Endpoint: srv.ln.Addr().String(), Timeout: time.Second})
	require.NoError(t, err)

	regs := make([]uint16, maxFrameRegisters+5)
	require.NoError(t, c.WriteRegisters(1, 10, regs))

	frames := srv.received()
	require.Len(t, frames, 2)
	assert.Equal(t, uint16(10), binary.BigEndian.Uint16(frames[0][6:8]))
	assert.Equal(t, uint16(10+maxFrameRegisters), binary.BigEndian.Uint16(frames[1][6:8]))
	assert.Equal(t, uint16(5), binary.BigEndian.Uint16(frames[1][8:10]))
}

func TestWriteRegisters_Rejected(t *testing.T) {
	srv := startServer(t, respRejected)

	c, err := NewEndpointClient(Config{Endpoint: srv.ln.Addr().String(), Timeout: time.Second})
	require.NoError(t, err)

	assert.ErrorIs(t, c.WriteRegisters(1, 0, []uint16{1}), ErrRejected)
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	_, err := NewEndpointClient(Config{})
	assert.Error(t, err)
}
