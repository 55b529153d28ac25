// Package logger provides a global, Sugared Zap logger that can be enriched
// per request through context.Context. It emits JSON logs to stderr, keeping
// stdout free for command output, and attaches OpenTelemetry trace and span
// identifiers whenever the context carries an active span.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey stores a derived logger inside a context.
	ctxKey = ctxKeyType{}

	// nopLogger is used before Init is called so library code never panics.
	nopLogger = zap.NewNop().Sugar()
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Calling Init multiple times has no
// effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stderr),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	if baseLogger == nil {
		return nil
	}
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with keysAndValues and, when present, the active trace and span ids.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	logger, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		logger = baseLogger
	}
	if logger == nil {
		logger = nopLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		keysAndValues = append(keysAndValues,
			"traceId", spanCtx.TraceID().String(),
			"spanId", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return logger
	}
	return logger.With(keysAndValues...)
}

// Derive returns a copy of ctx carrying a logger enriched with keysAndValues.
// Every later log call made with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	logger, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || logger == nil {
		logger = baseLogger
	}
	if logger == nil {
		logger = nopLogger
	}

	return context.WithValue(ctx, ctxKey, logger.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx, keysAndValues...).Logw(level, msg)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
