// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"context"
	"net"

	"github.com/momentics/hioload-tcp/api"
)

// resolve turns host and port into a single TCP address. The first candidate
// returned by the resolver wins. An empty host means the IPv4 wildcard.
func resolve(ctx context.Context, host, port string) (*net.TCPAddr, error) {
	hostport := net.JoinHostPort(host, port)

	p, err := net.DefaultResolver.LookupPort(ctx, "tcp", port)
	if err != nil {
		return nil, &api.SetupError{Op: api.OpResolve, Addr: hostport, Err: err}
	}
	if host == "" {
		return &net.TCPAddr{IP: net.IPv4zero, Port: p}, nil
	}

	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, &api.SetupError{Op: api.OpResolve, Addr: hostport, Err: err}
	}
	if len(ips) == 0 {
		return nil, &api.SetupError{Op: api.OpResolve, Addr: hostport, Err: api.ErrNoAddress}
	}
	return &net.TCPAddr{IP: ips[0].IP, Port: p, Zone: ips[0].Zone}, nil
}

// network returns the address family specific network name for addr.
func network(addr *net.TCPAddr) string {
	if addr.IP.To4() != nil {
		return "tcp4"
	}
	return "tcp6"
}
