package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(level slog.Level) (*SlogGormLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))
	return NewSlogGormLogger(l), &buf
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 3 }
}

func TestSlogGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("statements only at debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(slog.LevelInfo)
		l.Trace(ctx, time.Now(), query("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(slog.LevelDebug)
		l.Trace(ctx, time.Now(), query("SELECT 1"), nil)
		assert.Contains(t, buf.String(), `"msg":"sql"`)
		assert.Contains(t, buf.String(), `"component":"gorm"`)
	})

	t.Run("failures at error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(slog.LevelInfo)
		l.Trace(ctx, time.Now(), query("SELECT * FROM catalog_assets"), errors.New("no such table"))
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "no such table")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(slog.LevelInfo)
		l.Trace(ctx, time.Now(), query("SELECT 1"), gorm.ErrRecordNotFound)
		assert.NotContains(t, buf.String(), "sql_error")
	})

	t.Run("slow statements at warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(slog.LevelInfo)
		l.Trace(ctx, time.Now().Add(-time.Second), query("SELECT 1"), nil)
		assert.Contains(t, buf.String(), `"msg":"sql_slow"`)
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(slog.LevelDebug)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), query("SELECT 1"), errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
