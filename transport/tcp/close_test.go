package tcp_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-tcp/fake"
	"github.com/momentics/hioload-tcp/transport/tcp"
)

func TestTryCloseSocket_SwallowsErrors(t *testing.T) {
	sock := fake.NewSocket()
	sock.SetCloseError(errors.New("close failed"))

	assert.NotPanics(t, func() { tcp.TryCloseSocket(sock) })
	assert.Equal(t, 1, sock.Closes())
}

func TestTryCloseSocket_AlreadyClosedConn(t *testing.T) {
	a, b := net.Pipe()
	defer b.Close()
	_ = a.Close()

	assert.NotPanics(t, func() { tcp.TryCloseSocket(a) })
}

func TestTryCloseSocket_Nil(t *testing.T) {
	assert.NotPanics(t, func() { tcp.TryCloseSocket(nil) })
}
