// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-tcp.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrConnectionClosed reports that the peer closed or reset the stream
	// before delivering the promised number of bytes.
	ErrConnectionClosed = errors.New("transport: connection closed")

	// ErrNegativeLength is returned when a read is asked for fewer than zero bytes.
	ErrNegativeLength = errors.New("transport: negative length")

	// ErrFrameTooLarge is returned when a frame length exceeds the allowed limit.
	ErrFrameTooLarge = errors.New("transport: frame too large")

	// ErrServerCancelled is the termination cause passed when Server.Cancel is called.
	ErrServerCancelled = errors.New("transport: server cancelled")

	// ErrNoAddress is returned when resolution produced no usable address.
	ErrNoAddress = errors.New("transport: no address")
)

// SetupOp names the server setup step that failed.
type SetupOp string

const (
	OpResolve    SetupOp = "resolve"
	OpSocket     SetupOp = "socket"
	OpSetsockopt SetupOp = "setsockopt"
	OpBind       SetupOp = "bind"
	OpListen     SetupOp = "listen"
)

// SetupError is returned synchronously when a server cannot reach the
// listening state. Any socket created before the failure has been released.
type SetupError struct {
	Op   SetupOp
	Addr string
	Err  error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport: %s %s: %v", e.Op, e.Addr, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *SetupError) Unwrap() error {
	return e.Err
}
