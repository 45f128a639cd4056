package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func sqlFunc(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("logs statement errors with the failing sql", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), sqlFunc("INSERT INTO payments", 0), assert.AnError)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "INSERT INTO payments", entry.ContextMap()["sql"])
	})

	t.Run("suppresses record not found", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), sqlFunc("SELECT * FROM flights", 0), gormlogger.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("flags slow queries at warn", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Warn)

		begin := time.Now().Add(-time.Second)
		gl.Trace(ctx, begin, sqlFunc("SELECT SUM(seat_count) FROM reservations", 1), nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("carries the request id from context", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Error)

		reqCtx := context.WithValue(ctx, RequestIDKey, "req-77")
		gl.Trace(reqCtx, time.Now(), sqlFunc("UPDATE reservations", 1), assert.AnError)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-77", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("silent level logs nothing", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Silent)

		gl.Trace(ctx, time.Now().Add(-time.Second), sqlFunc("SELECT 1", 1), assert.AnError)

		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Error)

	muted := gl.LogMode(gormlogger.Silent)
	muted.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 1), assert.AnError)
	assert.Zero(t, logs.Len())

	// The original keeps its level
	gl.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 1), assert.AnError)
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"anything", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.level, MapGormLogLevel(tt.raw))
		})
	}
}
