package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomshop/shop-api/internal/config"
	"github.com/ecomshop/shop-api/internal/shared/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts slog for GORM. Query logs go through the request-scoped
// logger so they carry the request_id of the HTTP call that issued them.
type GormLogger struct {
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	HideSqlInLog         bool
	LogLevel             gormlogger.LogLevel
}

// newLogger creates a new GORM logger with slog
func newLogger(cfg *config.Config) gormlogger.Interface {
	// local/dev = info level, prod = error level only
	logLevel := gormlogger.Info
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	return &GormLogger{
		SlowThreshold:        200 * time.Millisecond,
		IgnoreRecordNotFound: true,               // lookups report not-found themselves
		HideSqlInLog:         cfg.IsProduction(), // Hide query parameters in production
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
	log := l.log(ctx)

	fields := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSqlInLog {
		fields = append(fields, "sql", sql)
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFound):
		log.ErrorContext(ctx, "Database query error", append(fields, "error", err)...)

	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormlogger.Warn:
		log.WarnContext(ctx, "Slow SQL query detected", append(fields, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		log.DebugContext(ctx, "SQL query executed", fields...)
	}
}
