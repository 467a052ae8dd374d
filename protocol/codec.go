// File: protocol/codec.go
// Package protocol implements the wire integer codec for control codes.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

// EncodeControlHeader returns the wire value of h.
func EncodeControlHeader(h ControlHeader) uint32 {
	return uint32(h)
}

// DecodeControlHeader maps a wire value back to a ControlHeader.
// ok is false for any value outside the known range; the caller decides
// how to treat an unknown code.
func DecodeControlHeader(w uint32) (h ControlHeader, ok bool) {
	if w >= uint32(numControlHeaders) {
		return 0, false
	}
	return ControlHeader(w), true
}

// EncodeConnectionRequestResponse returns the wire value of r.
func EncodeConnectionRequestResponse(r ConnectionRequestResponse) uint32 {
	return uint32(r)
}

// DecodeConnectionRequestResponse maps a wire value back to a response.
// ok is false for any value outside the known range.
func DecodeConnectionRequestResponse(w uint32) (r ConnectionRequestResponse, ok bool) {
	if w >= uint32(numConnectionRequestResponses) {
		return 0, false
	}
	return ConnectionRequestResponse(w), true
}

// EncodeWord32 encodes v as a 4-byte wire integer.
func EncodeWord32(v uint32) []byte {
	buf := make([]byte, WordSize)
	ByteOrder.PutUint32(buf, v)
	return buf
}

// DecodeWord32 decodes the first 4 bytes of b. It panics if len(b) < 4.
func DecodeWord32(b []byte) uint32 {
	return ByteOrder.Uint32(b)
}
