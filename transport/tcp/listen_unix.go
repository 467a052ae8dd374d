//go:build unix

// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp - raw socket listener setup for unix platforms.

package tcp

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/momentics/hioload-tcp/api"
	"golang.org/x/sys/unix"
)

const defaultBacklog = unix.SOMAXCONN

// listenTCP creates, configures, binds and listens on a socket for addr.
// The socket is built by hand so the backlog can be honoured. Once created it
// is owned by f; f is always closed on return and the returned listener holds
// its own duplicate, so a failure at any later step releases the socket.
func listenTCP(_ context.Context, addr *net.TCPAddr, backlog int, reuse bool) (*net.TCPListener, error) {
	family, sa, err := sockaddr(addr)
	if err != nil {
		return nil, &api.SetupError{Op: api.OpResolve, Addr: addr.String(), Err: err}
	}
	if backlog <= 0 {
		backlog = defaultBacklog
	}

	fd, err := unix.Socket(family, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, &api.SetupError{Op: api.OpSocket, Addr: addr.String(), Err: os.NewSyscallError("socket", err)}
	}
	unix.CloseOnExec(fd)
	f := os.NewFile(uintptr(fd), "tcp:"+addr.String())
	defer f.Close()

	if reuse {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			return nil, &api.SetupError{Op: api.OpSetsockopt, Addr: addr.String(), Err: os.NewSyscallError("setsockopt", err)}
		}
	}
	if err := unix.Bind(fd, sa); err != nil {
		return nil, &api.SetupError{Op: api.OpBind, Addr: addr.String(), Err: os.NewSyscallError("bind", err)}
	}
	if err := unix.Listen(fd, backlog); err != nil {
		return nil, &api.SetupError{Op: api.OpListen, Addr: addr.String(), Err: os.NewSyscallError("listen", err)}
	}

	l, err := net.FileListener(f)
	if err != nil {
		return nil, &api.SetupError{Op: api.OpListen, Addr: addr.String(), Err: err}
	}
	tl, ok := l.(*net.TCPListener)
	if !ok {
		TryCloseSocket(l)
		return nil, &api.SetupError{Op: api.OpListen, Addr: addr.String(), Err: fmt.Errorf("unexpected listener type %T", l)}
	}
	return tl, nil
}

func sockaddr(addr *net.TCPAddr) (int, unix.Sockaddr, error) {
	if ip4 := addr.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: addr.Port}
		copy(sa.Addr[:], ip4)
		return unix.AF_INET, sa, nil
	}
	ip6 := addr.IP.To16()
	if ip6 == nil {
		return 0, nil, fmt.Errorf("invalid IP address %q", addr.IP)
	}
	sa := &unix.SockaddrInet6{Port: addr.Port}
	copy(sa.Addr[:], ip6)
	if addr.Zone != "" {
		ifi, err := net.InterfaceByName(addr.Zone)
		if err != nil {
			return 0, nil, err
		}
		sa.ZoneId = uint32(ifi.Index)
	}
	return unix.AF_INET6, sa, nil
}
