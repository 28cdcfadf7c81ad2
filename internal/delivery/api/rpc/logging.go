package rpc

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "placeswipe/internal/delivery/context"
	domainerrors "placeswipe/internal/domain/errors"
)

// Logging logs every procedure call with its duration and outcome tag.
func Logging(logger *slog.Logger) Middleware {
	return func(next Procedure) Procedure {
		return func(ctx context.Context, call *Call) (any, error) {
			start := time.Now()
			value, err := next(ctx, call)

			outcome := TagSuccess
			level := slog.LevelInfo
			if err != nil {
				appErr := domainerrors.Resolve(err)
				outcome = appErr.ErrorCode()
				level = slog.LevelWarn
			}

			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, level, "RPC call",
				slog.String("method", call.Method),
				slog.String("call_id", call.ID),
				slog.Bool("authenticated", call.Session.Authenticated()),
				slog.Duration("duration", time.Since(start)),
				slog.String("outcome", outcome),
			)

			return value, err
		}
	}
}
