package oneshot_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-tcp/internal/oneshot"
)

func TestSignal_WaitersReleasedOnFire(t *testing.T) {
	s := oneshot.New()
	require.False(t, s.Fired())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Wait()
		}()
	}

	s.Fire()
	wg.Wait()
	assert.True(t, s.Fired())

	// late readers do not block
	s.Wait()
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel not closed after Fire")
	}
}

func TestSignal_FireIsIdempotent(t *testing.T) {
	s := oneshot.New()
	s.Fire()
	assert.NotPanics(t, s.Fire)
	assert.True(t, s.Fired())
}

func TestSignal_WaitBlocksUntilFire(t *testing.T) {
	s := oneshot.New()
	released := make(chan struct{})
	go func() {
		s.Wait()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("Wait returned before Fire")
	case <-time.After(20 * time.Millisecond):
	}

	s.Fire()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("Wait not released by Fire")
	}
}
