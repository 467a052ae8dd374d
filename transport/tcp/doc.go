// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp implements the TCP primitives of hioload-tcp: exact and
// length-prefixed frame reads, best-effort socket close, and a supervised
// accept loop running one goroutine per connection.
//
// Sockets have exactly one owner. The listening socket belongs to the accept
// loop goroutine and is closed by it when the server terminates. Each
// accepted socket belongs to the goroutine running its request handler; it
// is closed when the handler returns, and only then is the connection's close
// signal fired.
package tcp
