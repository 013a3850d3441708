package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls atomic.Int32
}

func (c *countingCleaner) CleanupRevoked(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, nil
}

func TestSchedulerSweepsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cleaner := &countingCleaner{}

	done := StartRevokedTokenCleanupScheduler(ctx, cleaner, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
