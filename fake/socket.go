// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the socket contract.

package fake

import (
	"errors"
	"io"
	"sync"

	"github.com/momentics/hioload-tcp/api"
)

// ErrSocketClosed is returned by operations on a closed fake socket.
var ErrSocketClosed = errors.New("fake: socket closed")

// Socket is a fake api.Socket that delivers scripted chunks, one per Read.
// A chunk larger than the caller's buffer is split across Reads. Once the
// script is exhausted Read returns the configured end condition.
type Socket struct {
	mu         sync.Mutex
	script     [][]byte
	sent       [][]byte
	reads      int
	maxRequest int
	closes     int
	closed     bool
	endErr     error
	recvError  error
	closeError error
}

var _ api.Socket = (*Socket)(nil)

// NewSocket creates a fake socket that will deliver chunks in order and then
// report io.EOF.
func NewSocket(chunks ...[]byte) *Socket {
	s := &Socket{endErr: io.EOF}
	for _, c := range chunks {
		s.AddRecvData(c)
	}
	return s
}

// Read implements api.Socket.Read.
func (s *Socket) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if len(p) > s.maxRequest {
		s.maxRequest = len(p)
	}
	if s.closed {
		return 0, ErrSocketClosed
	}
	if s.recvError != nil {
		return 0, s.recvError
	}
	if len(s.script) == 0 {
		return 0, s.endErr
	}

	head := s.script[0]
	n := copy(p, head)
	if n == len(head) {
		s.script = s.script[1:]
	} else {
		s.script[0] = head[n:]
	}
	return n, nil
}

// Write implements api.Socket.Write.
func (s *Socket) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrSocketClosed
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	s.sent = append(s.sent, cp)
	return len(p), nil
}

// Close implements api.Socket.Close.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closes++
	s.closed = true
	return s.closeError
}

// AddRecvData appends data to the read script.
func (s *Socket) AddRecvData(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.script = append(s.script, cp)
}

// SetEOFSilent makes an exhausted script return (0, nil) instead of io.EOF.
func (s *Socket) SetEOFSilent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endErr = nil
}

// SetRecvError configures the socket to return err on every Read.
func (s *Socket) SetRecvError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recvError = err
}

// SetCloseError configures the socket to return err on Close.
func (s *Socket) SetCloseError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeError = err
}

// Reads returns the number of Read calls made so far.
func (s *Socket) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// MaxRequest returns the largest buffer ever passed to Read.
func (s *Socket) MaxRequest() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxRequest
}

// Closes returns the number of Close calls made so far.
func (s *Socket) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// GetSentData returns everything written, one entry per Write.
func (s *Socket) GetSentData() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	sent := make([][]byte, len(s.sent))
	copy(sent, s.sent)
	return sent
}
