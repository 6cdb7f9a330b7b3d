package logger

import (
	"context"
	"log/slog"
)

// Safe* wrappers log through the package logger when it has been initialized
// and fall back to slog's default otherwise, so drivers and gateways can log
// before InitLogger runs (early startup, tests).

func SafeInfo(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
		return
	}
	slog.Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
		return
	}
	slog.Warn(msg, args...)
}

func SafeError(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
		return
	}
	slog.Error(msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.InfoContext(ctx, msg, args...)
		return
	}
	slog.InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.WarnContext(ctx, msg, args...)
		return
	}
	slog.WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.ErrorContext(ctx, msg, args...)
		return
	}
	slog.ErrorContext(ctx, msg, args...)
}
