package fake_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-tcp/fake"
)

func TestSocketSplitsChunks(t *testing.T) {
	s := fake.NewSocket([]byte("abcdef"), []byte("g"))
	buf := make([]byte, 4)

	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(buf[:n]))

	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ef", string(buf[:n]))

	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "g", string(buf[:n]))

	_, err = s.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, s.Reads())
	assert.Equal(t, 4, s.MaxRequest())
}

func TestSocketSilentEOF(t *testing.T) {
	s := fake.NewSocket()
	s.SetEOFSilent()
	n, err := s.Read(make([]byte, 8))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSocketErrorsAndClose(t *testing.T) {
	boom := errors.New("boom")
	s := fake.NewSocket([]byte("x"))
	s.SetRecvError(boom)
	_, err := s.Read(make([]byte, 1))
	assert.ErrorIs(t, err, boom)

	s.SetCloseError(boom)
	assert.ErrorIs(t, s.Close(), boom)
	assert.ErrorIs(t, s.Close(), boom)
	assert.Equal(t, 2, s.Closes())

	_, err = s.Read(make([]byte, 1))
	assert.ErrorIs(t, err, fake.ErrSocketClosed)
	_, err = s.Write([]byte("y"))
	assert.ErrorIs(t, err, fake.ErrSocketClosed)
}

func TestSocketRecordsWrites(t *testing.T) {
	s := fake.NewSocket()
	p := []byte("hello")
	_, err := s.Write(p)
	require.NoError(t, err)
	p[0] = 'j'
	assert.Equal(t, [][]byte{[]byte("hello")}, s.GetSentData())
}
