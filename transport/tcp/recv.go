// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Exact-length and length-prefixed reads over a stream socket.

package tcp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/momentics/hioload-tcp/api"
	"github.com/momentics/hioload-tcp/protocol"
)

// ChunkSize caps the size of a single read request so a large declared
// length never turns into a single large allocation.
const ChunkSize = 4096

// RecvExact reads exactly n bytes from sock. The result is the sequence of
// chunks as delivered by the transport; only their concatenated length is
// guaranteed. n == 0 returns an empty sequence without reading.
//
// If the stream ends before n bytes arrive the error wraps
// api.ErrConnectionClosed. n < 0 violates the precondition and returns
// api.ErrNegativeLength.
func RecvExact(sock io.Reader, n int) ([][]byte, error) {
	if n < 0 {
		return nil, api.ErrNegativeLength
	}
	// n is peer-controlled; grow the list as data arrives.
	chunks := make([][]byte, 0, min(n/ChunkSize+1, initialChunks))
	got := 0
	for got < n {
		buf := make([]byte, min(n-got, ChunkSize))
		k, err := sock.Read(buf)
		if k > 0 {
			chunks = append(chunks, buf[:k])
			got += k
		}
		if got == n {
			break
		}
		if err != nil {
			if isClosed(err) {
				return nil, fmt.Errorf("%w: got %d of %d bytes: %w", api.ErrConnectionClosed, got, n, err)
			}
			return nil, fmt.Errorf("tcp: recv: %w", err)
		}
		if k == 0 {
			return nil, fmt.Errorf("%w: got %d of %d bytes", api.ErrConnectionClosed, got, n)
		}
	}
	return chunks, nil
}

// RecvWord32 reads one wire integer.
func RecvWord32(sock io.Reader) (uint32, error) {
	chunks, err := RecvExact(sock, protocol.WordSize)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeWord32(Concat(chunks)), nil
}

// RecvWithLength reads one length-prefixed frame and returns its payload chunks.
func RecvWithLength(sock io.Reader) ([][]byte, error) {
	return RecvWithLengthLimit(sock, protocol.MaxFrameLength)
}

// RecvWithLengthLimit is RecvWithLength that rejects frames declaring more
// than limit bytes before reading the payload.
func RecvWithLengthLimit(sock io.Reader, limit uint32) ([][]byte, error) {
	length, err := RecvWord32(sock)
	if err != nil {
		return nil, err
	}
	if length > limit {
		return nil, fmt.Errorf("%w: %d > %d", api.ErrFrameTooLarge, length, limit)
	}
	if uint64(length) > uint64(maxInt) {
		return nil, fmt.Errorf("%w: %d", api.ErrFrameTooLarge, length)
	}
	return RecvExact(sock, int(length))
}

// Concat joins a chunk sequence into one slice. A single chunk is returned as is.
func Concat(chunks [][]byte) []byte {
	if len(chunks) == 1 {
		return chunks[0]
	}
	return protocol.Join(chunks)
}

const maxInt = int(^uint(0) >> 1)

// initialChunks bounds the chunk list reserved before any payload arrives.
const initialChunks = 16

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET)
}
