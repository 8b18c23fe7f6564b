package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	reqctx "github.com/piresc/barengan/internal/pkg/context"
	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// facade is globalLogger with one extra caller frame skipped for the package-level functions
	facade *zap.Logger
	mu     sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
	facade = logger.Logger.WithOptions(zap.AddCallerSkip(1))
}

// GetGlobalLogger returns the global logger instance, falling back to a production zap logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, _ := zap.NewProduction()
		globalLogger = &ZapLogger{Logger: defaultLogger}
		facade = defaultLogger.WithOptions(zap.AddCallerSkip(1))
	}
	return globalLogger
}

func base() *zap.Logger {
	GetGlobalLogger()
	mu.RLock()
	defer mu.RUnlock()
	return facade
}

func withTrace(ctx context.Context) *zap.Logger {
	l := base()
	if requestID := reqctx.GetRequestID(ctx); requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}
	if userID := reqctx.GetUserID(ctx); userID != "" {
		l = l.With(zap.String("user_id", userID))
	}
	if txn := newrelic.FromContext(ctx); txn != nil {
		if md := txn.GetLinkingMetadata(); md.TraceID != "" {
			l = l.With(zap.String("trace.id", md.TraceID), zap.String("span.id", md.SpanID))
		}
	}
	return l
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	base().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	base().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	base().Error(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	base().Debug(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	base().Fatal(msg, fields...)
}

// InfoCtx logs an info message correlated with the New Relic transaction in ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	withTrace(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning message correlated with the New Relic transaction in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	withTrace(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error message correlated with the New Relic transaction in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	withTrace(ctx).Error(msg, fields...)
}

// DebugCtx logs a debug message correlated with the New Relic transaction in ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	withTrace(ctx).Debug(msg, fields...)
}
