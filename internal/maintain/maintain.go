// Package maintain wires up the cron loop that keeps the store honest:
// purging rows past the retention horizon and refreshing every slice's
// cached job count against the live predicate.
package maintain

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobslice-engine/internal/store"
)

// Loop wraps robfig/cron around the store maintenance passes.
type Loop struct {
	cron      *cron.Cron
	db        *store.DB
	maxAge    time.Duration
	retention time.Duration
	spec      string // cron spec, e.g. "@every 6h"
	log       *zap.Logger
}

func New(db *store.DB, maxAge, retention time.Duration, intervalHours int, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		cron:      cron.New(),
		db:        db,
		maxAge:    maxAge,
		retention: retention,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
		log:       log,
	}
}

// Start registers the job and starts the scheduler. Also runs one pass
// immediately so counts are warm without waiting for the first tick.
func (l *Loop) Start(ctx context.Context) error {
	_, err := l.cron.AddFunc(l.spec, func() {
		l.runOnce(ctx)
	})
	if err != nil {
		return err
	}

	l.cron.Start()
	l.log.Info("maintenance loop started", zap.String("spec", l.spec))

	go l.runOnce(ctx)
	return nil
}

// Stop shuts the scheduler down; in-flight runs finish on their own.
func (l *Loop) Stop() {
	l.cron.Stop()
	l.log.Info("maintenance loop stopped")
}

func (l *Loop) runOnce(ctx context.Context) {
	start := time.Now()

	purged, err := l.db.PurgeExpired(ctx, l.retention)
	if err != nil {
		l.log.Error("purge expired jobs", zap.Error(err))
		return
	}

	refreshed, err := l.db.RefreshSliceCounts(ctx, l.maxAge)
	if err != nil {
		l.log.Error("refresh slice counts", zap.Error(err))
		return
	}

	l.log.Info("maintenance pass complete",
		zap.Int64("purged", purged),
		zap.Int("counts_refreshed", refreshed),
		zap.Duration("took", time.Since(start)),
	)
}
