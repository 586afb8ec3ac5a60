// Package logger provides a global sugared zap logger. Entries are JSON,
// written to the configured output paths, and teed into OpenTelemetry when a
// LoggerProvider has been registered by the telemetry package.
//
// Every helper takes a context: fields attached with Derive travel with the
// context, and the active span's trace and span ids are added automatically.
package logger

import (
	"context"
	"sync"

	"github.com/gabapcia/waveportal/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

var ctxKey ctxKeyType

var (
	baseLogger         = zap.NewNop().Sugar()
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error"). Output goes to outputPaths (zap.Open syntax: "stdout",
// "stderr" or file paths), defaulting to stdout. Only the first successful
// call has any effect.
func Init(level string, outputPaths ...string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	sink, closeSink, err := zap.Open(outputPaths...)
	if err != nil {
		return err
	}

	initialized := false
	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				sink,
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("waveportal", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
		initialized = true
	})

	if !initialized {
		closeSink()
	}

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return baseLogger.Sync()
}

// Derive returns a context whose logger carries keysAndValues on every entry.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// deriveFromCtx picks the context's logger (or the base one) and adds the
// span identifiers of ctx plus keysAndValues.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		l = l.With(
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}
