package api_test

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-tcp/api"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "created", api.StateCreated.String())
	assert.Equal(t, "listening", api.StateListening.String())
	assert.Equal(t, "terminated", api.StateTerminated.String())
	assert.Equal(t, "unknown", api.State(42).String())
}

func TestSetupErrorWrapsCause(t *testing.T) {
	var err error = &api.SetupError{Op: api.OpBind, Addr: "127.0.0.1:80", Err: syscall.EADDRINUSE}

	assert.ErrorIs(t, err, syscall.EADDRINUSE)
	assert.Contains(t, err.Error(), "bind 127.0.0.1:80")

	var se *api.SetupError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, api.OpBind, se.Op)

	noAddr := &api.SetupError{Op: api.OpResolve, Err: api.ErrNoAddress}
	assert.Equal(t, "transport: resolve: "+api.ErrNoAddress.Error(), noAddr.Error())
}
