package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrigger_CoalescesRapidCalls(t *testing.T) {
	var runs int64
	d := New(30*time.Millisecond, func() { atomic.AddInt64(&runs, 1) })

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&runs))
}

func TestTrigger_RunsAgainAfterQuietPeriod(t *testing.T) {
	var runs int64
	d := New(20*time.Millisecond, func() { atomic.AddInt64(&runs, 1) })

	d.Trigger()
	time.Sleep(60 * time.Millisecond)
	d.Trigger()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int64(2), atomic.LoadInt64(&runs))
}

func TestStop_CancelsPendingRun(t *testing.T) {
	var runs int64
	d := New(20*time.Millisecond, func() { atomic.AddInt64(&runs, 1) })

	d.Trigger()
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int64(0), atomic.LoadInt64(&runs))
}

func TestFlush_RunsImmediately(t *testing.T) {
	var runs int64
	d := New(time.Hour, func() { atomic.AddInt64(&runs, 1) })

	d.Trigger()
	d.Flush()

	assert.Equal(t, int64(1), atomic.LoadInt64(&runs))
}
