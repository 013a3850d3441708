package scheduler

import (
	"context"
	"time"

	"learnsmate_backend/internals/logger"
)

// Cleaner purges revoked tokens that have expired.
type Cleaner interface {
	CleanupRevoked(ctx context.Context) (int64, error)
}

// StartRevokedTokenCleanupScheduler runs one sweep immediately and then every
// interval until ctx is cancelled. The returned channel closes on exit.
func StartRevokedTokenCleanupScheduler(ctx context.Context, c Cleaner, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			sweep(ctx, c)
			select {
			case <-ctx.Done():
				logger.Log.Info("[CLEANUP] revoked token scheduler stopped")
				return
			case <-ticker.C:
			}
		}
	}()
	return done
}

func sweep(ctx context.Context, c Cleaner) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := c.CleanupRevoked(runCtx)
	if err != nil {
		logger.Log.WithError(err).Error("[CLEANUP] revoked token sweep failed")
		return
	}
	if n > 0 {
		logger.Log.Infof("[CLEANUP] %d expired revoked tokens removed", n)
	}
}
