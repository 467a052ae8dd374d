// File: api/handler.go
// Package api defines server callback contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"context"
	"net"
)

// RequestHandler runs once per accepted connection in its own goroutine.
//
// conn is owned by the handler for the duration of the call. After the
// handler returns (normally or by panic) the server closes conn and only
// then releases waitClosed. waitClosed may be called any number of times,
// from any goroutine.
//
// conn is a wrapper, not a *net.TCPConn. It supports CloseWrite for
// half-close; other socket options are reached through
// conn.(interface{ NetConn() net.Conn }).NetConn(), whose Close bypasses the
// server's close-once guard and must not be called.
type RequestHandler func(ctx context.Context, waitClosed func(), conn net.Conn)

// TerminationHandler is invoked exactly once when the accept loop stops
// permanently. cause is the accept error or the cancellation cause.
type TerminationHandler func(cause error)
