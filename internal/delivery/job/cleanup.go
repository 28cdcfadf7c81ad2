// Package job runs background work of the API process.
package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"placeswipe/config"
	"placeswipe/internal/delivery"
	"placeswipe/internal/domain/lifecycle"
	"placeswipe/internal/usecase"
	"placeswipe/internal/util"

	"go.uber.org/fx"
)

const sweepTimeout = time.Minute

type cleanupJob struct {
	images   usecase.ImageUsecase
	interval time.Duration
	enabled  bool
	now      func() time.Time
	logger   *slog.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// CleanupParams holds dependencies for the stale upload sweeper, injected by Fx.
type CleanupParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	ImageUsecase usecase.ImageUsecase
}

// NewCleanupJob creates the delivery that periodically drops pending uploads
// which were never confirmed.
func NewCleanupJob(params CleanupParams) delivery.Delivery {
	ctx, cancel := context.WithCancel(context.Background())
	j := &cleanupJob{
		images: params.ImageUsecase,
		now:    time.Now,
		logger: params.Logger,
		ctx:    ctx,
		cancel: cancel,
	}
	if uploads := params.Config.Uploads; uploads != nil {
		j.interval = uploads.CleanupInterval
		j.enabled = uploads.CleanupEnabled
	}

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

// Serve sweeps once right away and then on every tick until ctx is done or
// the job is stopped. Sweep failures are logged and retried on the next tick.
func (j *cleanupJob) Serve(ctx context.Context) error {
	if !j.enabled || j.interval <= 0 {
		j.logger.Info("Stale upload cleanup disabled")

		return nil
	}

	if !j.begin() {
		return nil
	}
	defer j.wg.Done()

	j.logger.Info("Starting stale upload cleanup", slog.String("interval", util.FormatDuration(j.interval)))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-j.ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// begin registers a running Serve with the stop hook. It reports false once
// stop has begun, so wg.Add never races wg.Wait.
func (j *cleanupJob) begin() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped {
		return false
	}
	j.wg.Add(1)

	return true
}

func (j *cleanupJob) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	stop := context.AfterFunc(j.ctx, cancel)
	defer stop()

	out, err := j.images.CleanupStaleUploads(sweepCtx, j.now())
	if err != nil {
		j.logger.Error("Stale upload cleanup failed", slog.Any("error", err))

		return
	}
	if out.StorageFailures > 0 {
		j.logger.Warn("Stale upload cleanup left stored objects behind", slog.Int("storage_failures", out.StorageFailures))
	}
}

func (j *cleanupJob) stop(ctx context.Context) error {
	j.mu.Lock()
	j.stopped = true
	j.mu.Unlock()

	j.cancel()

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	timeout, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		j.logger.Info("Stale upload cleanup stopped")
	case <-timeout.Done():
		j.logger.Warn("Stale upload cleanup did not stop in time")
	}

	return nil
}
