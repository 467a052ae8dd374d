// Package oneshot
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-write notification cell with any number of blocking readers.

package oneshot

import "sync"

// Signal is written at most once and read any number of times.
// The zero value is not usable; call New.
type Signal struct {
	done chan struct{}
	once sync.Once
}

// New returns an unfired signal.
func New() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Fire releases every current and future waiter. Calls after the first are no-ops.
func (s *Signal) Fire() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Wait blocks until Fire has been called.
func (s *Signal) Wait() {
	<-s.done
}

// Done returns a channel closed on Fire, for use in select.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Fired reports whether Fire has been called.
func (s *Signal) Fired() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
