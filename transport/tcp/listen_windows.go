//go:build windows

// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp - Windows listener setup. The backlog is left to the runtime.

package tcp

import (
	"context"
	"net"
	"os"
	"syscall"

	"github.com/momentics/hioload-tcp/api"
	"golang.org/x/sys/windows"
)

const defaultBacklog = windows.SOMAXCONN

func listenTCP(ctx context.Context, addr *net.TCPAddr, _ int, reuse bool) (*net.TCPListener, error) {
	var sockoptErr error
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			if !reuse {
				return nil
			}
			if err := c.Control(func(fd uintptr) {
				sockoptErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			if sockoptErr != nil {
				return os.NewSyscallError("setsockopt", sockoptErr)
			}
			return nil
		},
	}
	l, err := lc.Listen(ctx, network(addr), addr.String())
	if err != nil {
		op := api.OpListen
		if sockoptErr != nil {
			op = api.OpSetsockopt
		}
		return nil, &api.SetupError{Op: op, Addr: addr.String(), Err: err}
	}
	return l.(*net.TCPListener), nil
}
