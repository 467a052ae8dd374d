// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Transport control protocol constants

package protocol

import "encoding/binary"

// ByteOrder is the byte order of every wire integer. Both ends must agree.
var ByteOrder = binary.BigEndian

const (
	// WordSize is the encoded size of a wire integer.
	WordSize = 4

	// MaxFrameLength is the largest payload length a frame header can carry.
	MaxFrameLength = 1<<32 - 1
)

// ControlHeader signals a transport-level event on a socket.
type ControlHeader uint32

const (
	CreatedNewConnection ControlHeader = iota
	CloseConnection
	CloseSocket
	CloseEndPoint
	ProbeSocket
	ProbeSocketAck

	numControlHeaders
)

func (h ControlHeader) String() string {
	switch h {
	case CreatedNewConnection:
		return "CreatedNewConnection"
	case CloseConnection:
		return "CloseConnection"
	case CloseSocket:
		return "CloseSocket"
	case CloseEndPoint:
		return "CloseEndPoint"
	case ProbeSocket:
		return "ProbeSocket"
	case ProbeSocketAck:
		return "ProbeSocketAck"
	default:
		return "ControlHeader(invalid)"
	}
}

// ConnectionRequestResponse answers an incoming connection request.
type ConnectionRequestResponse uint32

const (
	// Accepted: the request was accepted.
	Accepted ConnectionRequestResponse = iota
	// Invalid: the requested endpoint does not exist.
	Invalid
	// Crossed: the peer is concurrently connecting to us.
	Crossed

	numConnectionRequestResponses
)

func (r ConnectionRequestResponse) String() string {
	switch r {
	case Accepted:
		return "Accepted"
	case Invalid:
		return "Invalid"
	case Crossed:
		return "Crossed"
	default:
		return "ConnectionRequestResponse(invalid)"
	}
}
