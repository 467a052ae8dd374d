// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// State enumerates the lifecycle of a server.
type State int32

const (
	StateCreated State = iota
	StateListening
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateListening:
		return "listening"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
