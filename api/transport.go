// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Defines the socket abstraction consumed by frame readers and fakes.

package api

// Socket abstracts a full-duplex stream connection. net.Conn satisfies it.
type Socket interface {
	// Read reads into a preallocated buffer
	Read(p []byte) (n int, err error)

	// Write writes buffer contents into the connection
	Write(p []byte) (n int, err error)

	// Close shuts down the connection
	Close() error
}
