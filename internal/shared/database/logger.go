package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger adapts slog for GORM.
// Queries are logged with the request-scoped logger when the context carries one.
type GormLogger struct {
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	HideSQL              bool
	LogLevel             gormlogger.LogLevel
}

// newLogger creates a GORM logger for the configured environment
func newLogger(cfg *config.Config) gormlogger.Interface {
	// local/dev log every query; production logs errors only
	logLevel := gormlogger.Warn
	switch {
	case cfg.IsDevelopment():
		logLevel = gormlogger.Info
	case cfg.IsProduction():
		logLevel = gormlogger.Error
	}

	return &GormLogger{
		SlowThreshold:        defaultSlowThreshold,
		IgnoreRecordNotFound: true, // not found is a normal outcome for lookups
		HideSQL:              cfg.IsProduction(),
		LogLevel:             logLevel,
	}
}

func (l *GormLogger) log(ctx context.Context) *slog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.FromContext(ctx).With("component", "gorm")
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.log(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.log(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.log(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries with timing information
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		fields = append(fields, "sql", sql)
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFound):
		l.log(ctx).ErrorContext(ctx, "database query failed", append(fields, "error", err)...)

	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormlogger.Warn:
		l.log(ctx).WarnContext(ctx, "slow query", append(fields, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		l.log(ctx).DebugContext(ctx, "query executed", fields...)
	}
}
