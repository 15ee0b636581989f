package session_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickPace = 2 * time.Millisecond

func TestCountdown_TicksDownAndExpires(t *testing.T) {
	var ticks atomic.Int32
	expired := make(chan struct{})

	c := session.NewCountdown(3*time.Second, tickPace,
		func(time.Duration) { ticks.Add(1) },
		func() { close(expired) },
	)
	c.Start()

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not expire")
	}

	// 3s budget at 1s per tick: two onTick calls, then expiry on the third.
	assert.Equal(t, int32(2), ticks.Load())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestCountdown_ExpiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32

	c := session.NewCountdown(time.Second, tickPace, nil, func() { fired.Add(1) })
	c.Start()

	require.Eventually(t, func() bool { return fired.Load() > 0 }, 2*time.Second, tickPace)
	time.Sleep(20 * tickPace)
	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_StopCancelsExpiry(t *testing.T) {
	var fired atomic.Int32

	c := session.NewCountdown(5*time.Second, 50*time.Millisecond, nil, func() { fired.Add(1) })
	c.Start()
	c.Stop()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	c := session.NewCountdown(time.Second, tickPace, nil, nil)
	c.Start()

	c.Stop()
	c.Stop()
	c.Stop()
}

func TestCountdown_RemainingNeverNegative(t *testing.T) {
	expired := make(chan struct{})
	c := session.NewCountdown(time.Second, tickPace, nil, func() { close(expired) })
	c.Start()

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not expire")
	}
	assert.GreaterOrEqual(t, c.Remaining(), time.Duration(0))
}
