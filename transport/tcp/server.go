// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime/debug"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-tcp/api"
	"github.com/momentics/hioload-tcp/internal/logging"
	"github.com/momentics/hioload-tcp/internal/oneshot"
)

// ServerConfig holds listener parameters.
type ServerConfig struct {
	Host         string // host name or IP literal; empty means the IPv4 wildcard
	Port         string // port number or service name; "0" lets the OS choose
	Backlog      int    // listen backlog; <= 0 means the platform maximum
	ReuseAddress bool   // set SO_REUSEADDR before bind

	// Logger overrides the package logger.
	Logger *zerolog.Logger

	// ConnContext, if set, derives the context handed to the request handler.
	// It runs on the connection's goroutine; a panic is handled like a
	// handler panic. The parent is never cancelled by server termination.
	// Cancelling the returned context closes the connection.
	ConnContext func(ctx context.Context, conn net.Conn) context.Context
}

// DefaultServerConfig returns a loopback listener on an OS-chosen port.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		Backlog:      defaultBacklog,
		ReuseAddress: true,
	}
}

// Server is a running accept loop. It is created by StartServer.
type Server struct {
	cfg         ServerConfig
	ln          *net.TCPListener
	port        string
	log         zerolog.Logger
	onTerminate api.TerminationHandler
	handle      api.RequestHandler

	ctx    context.Context
	cancel context.CancelCauseFunc
	state  atomic.Int32
	done   chan struct{}
	err    error
}

// StartServer resolves cfg.Host and cfg.Port, listens, and starts the accept
// loop in its own goroutine. It returns the port actually bound.
//
// Setup failures are returned as *api.SetupError and leave nothing running.
// After a successful return every accepted connection is served by handle in
// a new goroutine, and onTerminate is called exactly once when the loop stops,
// either because Accept failed or because ctx or the server was cancelled.
func StartServer(ctx context.Context, cfg ServerConfig, onTerminate api.TerminationHandler, handle api.RequestHandler) (string, *Server, error) {
	if handle == nil {
		return "", nil, errors.New("tcp: nil request handler")
	}

	addr, err := resolve(ctx, cfg.Host, cfg.Port)
	if err != nil {
		return "", nil, err
	}
	ln, err := listenTCP(ctx, addr, cfg.Backlog, cfg.ReuseAddress)
	if err != nil {
		return "", nil, err
	}
	bound, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		TryCloseSocket(ln)
		return "", nil, &api.SetupError{Op: api.OpListen, Addr: addr.String(), Err: fmt.Errorf("unexpected address type %T", ln.Addr())}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Logger()
	}

	s := &Server{
		cfg:         cfg,
		ln:          ln,
		port:        strconv.Itoa(bound.Port),
		log:         logger.With().Str("component", "tcp").Str("addr", bound.String()).Logger(),
		onTerminate: onTerminate,
		handle:      handle,
		done:        make(chan struct{}),
	}
	s.ctx, s.cancel = context.WithCancelCause(ctx)
	s.state.Store(int32(api.StateListening))

	s.log.Info().Str("port", s.port).Int("backlog", cfg.Backlog).Msg("listening")
	go s.acceptLoop()
	return s.port, s, nil
}

// Port returns the bound port.
func (s *Server) Port() string {
	return s.port
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// State reports the lifecycle state.
func (s *Server) State() api.State {
	return api.State(s.state.Load())
}

// Cancel stops the accept loop. The termination handler receives
// api.ErrServerCancelled unless the loop had already stopped. Running
// request handlers are not affected.
func (s *Server) Cancel() {
	s.cancel(api.ErrServerCancelled)
}

// Done is closed after the termination handler has returned.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Err returns the termination cause, or nil while the server is listening.
func (s *Server) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// aLongTimeAgo is a deadline that makes a blocked Accept return at once.
var aLongTimeAgo = time.Unix(1, 0)

func (s *Server) acceptLoop() {
	var cause error
	defer func() {
		if r := recover(); r != nil {
			cause = fmt.Errorf("tcp: accept loop panic: %v", r)
		}
		s.terminate(cause)
	}()

	// Cancellation only wakes the loop; the listener is closed by terminate.
	woken := make(chan struct{})
	stop := context.AfterFunc(s.ctx, func() {
		defer close(woken)
		_ = s.ln.SetDeadline(aLongTimeAgo)
	})
	defer func() {
		if !stop() {
			<-woken
		}
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if s.ctx.Err() != nil {
				cause = context.Cause(s.ctx)
			} else {
				cause = err
			}
			return
		}
		s.serve(conn)
	}
}

func (s *Server) terminate(cause error) {
	TryCloseSocket(s.ln)
	s.cancel(cause)
	s.err = cause
	s.state.Store(int32(api.StateTerminated))
	s.log.Warn().Err(cause).Msg("accept loop terminated")

	defer close(s.done)
	if s.onTerminate != nil {
		s.onTerminate(cause)
	}
}

func (s *Server) serve(raw net.Conn) {
	go s.runHandler(raw)
}

// runHandler owns raw. Its first deferred call closes the connection and then
// fires the close signal, on every exit path including a panic in ConnContext.
func (s *Server) runHandler(raw net.Conn) {
	conn := &ownedConn{Conn: raw}
	closed := oneshot.New()
	remote := "unknown"
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("remote", remote).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("request handler panic")
		}
		TryCloseSocket(conn)
		closed.Fire()
		s.log.Debug().Str("remote", remote).Msg("connection closed")
	}()

	if addr := raw.RemoteAddr(); addr != nil {
		remote = addr.String()
	}

	ctx := context.WithoutCancel(s.ctx)
	if s.cfg.ConnContext != nil {
		if c := s.cfg.ConnContext(ctx, raw); c != nil {
			ctx = c
		}
	}

	stop := context.AfterFunc(ctx, func() {
		TryCloseSocket(conn)
	})
	defer stop()

	s.log.Debug().Str("remote", remote).Msg("connection accepted")
	s.handle(ctx, closed.Wait, conn)
}

// ownedConn closes the underlying connection at most once, whoever asks first.
type ownedConn struct {
	net.Conn
	once sync.Once
	err  error
}

func (c *ownedConn) Close() error {
	c.once.Do(func() {
		c.err = c.Conn.Close()
	})
	return c.err
}

// CloseWrite shuts down the writing side when the underlying connection
// supports half-close.
func (c *ownedConn) CloseWrite() error {
	if cw, ok := c.Conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return errors.ErrUnsupported
}

// NetConn returns the underlying connection. Closing it directly bypasses
// the close-once guard; close the wrapper instead.
func (c *ownedConn) NetConn() net.Conn {
	return c.Conn
}
