package pixclust

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/pixclust/metric"
)

// Logger wraps slog.Logger with pixclust-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(alg Algorithm) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", alg.String()),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogSegment logs a clustering run.
func (l *Logger) LogSegment(ctx context.Context, alg Algorithm, pixels, clusters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segmentation failed",
			"algorithm", alg.String(),
			"pixels", pixels,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segmentation completed",
			"algorithm", alg.String(),
			"pixels", pixels,
			"clusters", clusters,
		)
	}
}

// LogEvaluate logs a quality evaluation.
func (l *Logger) LogEvaluate(ctx context.Context, r metric.Report) {
	l.DebugContext(ctx, "evaluation completed",
		"segments", r.NumSegments,
		"average_size", r.AverageSize,
		"silhouette", r.Silhouette,
		"davies_bouldin", r.DaviesBouldin,
		"calinski_harabasz", r.CalinskiHarabasz,
	)
}

// LogAdmission logs a request rejected by the resource controller.
func (l *Logger) LogAdmission(ctx context.Context, alg Algorithm, err error) {
	l.WarnContext(ctx, "segmentation not admitted",
		"algorithm", alg.String(),
		"error", err,
	)
}
