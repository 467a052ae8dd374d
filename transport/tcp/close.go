// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import "io"

// TryCloseSocket closes sock and discards any error. Use it only where the
// resource is being abandoned and a failed close carries no information.
func TryCloseSocket(sock io.Closer) {
	if sock == nil {
		return
	}
	_ = sock.Close()
}
