// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Length-prefixed frame encoding for the write side of the transport.
//
// A frame is a 4-byte wire integer holding the payload length followed by
// exactly that many bytes. Payloads travel as chunk sequences so callers can
// hand over scattered buffers without joining them first.

package protocol

import (
	"io"
	"net"

	"github.com/momentics/hioload-tcp/api"
)

// FrameLength returns the total length of chunks.
func FrameLength(chunks [][]byte) int {
	n := 0
	for _, c := range chunks {
		n += len(c)
	}
	return n
}

// Join concatenates chunks into a single freshly allocated slice.
func Join(chunks [][]byte) []byte {
	out := make([]byte, 0, FrameLength(chunks))
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// PrependLength returns a chunk sequence holding the length header followed
// by chunks. The chunks themselves are not copied.
func PrependLength(chunks [][]byte) ([][]byte, error) {
	n := FrameLength(chunks)
	if uint64(n) > MaxFrameLength {
		return nil, api.ErrFrameTooLarge
	}
	out := make([][]byte, 0, len(chunks)+1)
	out = append(out, EncodeWord32(uint32(n)))
	return append(out, chunks...), nil
}

// SendMany writes every chunk to w. On a *net.TCPConn the chunks go out with
// a single vectored write.
func SendMany(w io.Writer, chunks [][]byte) error {
	bufs := make(net.Buffers, len(chunks))
	copy(bufs, chunks)
	_, err := bufs.WriteTo(w)
	return err
}

// SendWithLength writes chunks as one length-prefixed frame.
func SendWithLength(w io.Writer, chunks ...[]byte) error {
	frame, err := PrependLength(chunks)
	if err != nil {
		return err
	}
	return SendMany(w, frame)
}

// SendWord32 writes v as a single wire integer.
func SendWord32(w io.Writer, v uint32) error {
	_, err := w.Write(EncodeWord32(v))
	return err
}
