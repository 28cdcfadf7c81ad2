package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"placeswipe/config"
	"placeswipe/internal/domain/lifecycle"
	"placeswipe/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	// poolWaitSlow is the wait per sample above which contention is logged as a warning.
	poolWaitSlow = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the primary and any replicas listed under postgres. The pool
// is pinged on fx start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Unique violations come back as gorm.ErrDuplicatedKey.
	conn.TranslateError = true

	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	pool, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres connection pool")
	}

	sampler := &poolSampler{stats: pool.Stats, logger: params.Logger}
	samplerCtx, stopSampler := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := pool.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			go sampler.run(samplerCtx, poolSampleInterval)
			params.Logger.Info("Postgres connected", slog.Int("replicas", len(params.Config.Postgres.Replicas)))

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampler()

			return pool.Close()
		},
	})

	return db, nil
}

// poolSampler reports callers that had to wait for a free connection.
type poolSampler struct {
	stats  func() sql.DBStats
	logger *slog.Logger
}

func (s *poolSampler) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := s.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := s.stats()
			s.compare(ctx, prev, cur)
			prev = cur
		}
	}
}

// compare logs the waits between two samples; nothing when there were none.
func (s *poolSampler) compare(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitSlow {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
