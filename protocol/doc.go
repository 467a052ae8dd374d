// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Implements the wire contract of the hioload-tcp transport.
//
// Includes:
//   - Control headers and connection request responses as 4-byte wire integers
//   - Range-checked decoding that reports unknown codes instead of failing
//   - Length-prefixed frame encoding with vectored writes
//
// All integers use ByteOrder (big-endian) on every call site.
package protocol
