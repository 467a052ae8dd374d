//go:build !unix && !windows

// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"context"
	"net"

	"github.com/momentics/hioload-tcp/api"
)

const defaultBacklog = 128

// listenTCP has no socket options or backlog control on this platform.
func listenTCP(ctx context.Context, addr *net.TCPAddr, _ int, _ bool) (*net.TCPListener, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, network(addr), addr.String())
	if err != nil {
		return nil, &api.SetupError{Op: api.OpListen, Addr: addr.String(), Err: err}
	}
	return l.(*net.TCPListener), nil
}
