package gormrepo

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"recipebox/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSQLiteForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "recipebox.db", want: "recipebox.db?_foreign_keys=on"},
		{dsn: "file:x?mode=memory&cache=shared", want: "file:x?mode=memory&cache=shared&_foreign_keys=on"},
		{dsn: "recipebox.db?_foreign_keys=off", want: "recipebox.db?_foreign_keys=off"},
		{dsn: "recipebox.db?_fk=1", want: "recipebox.db?_fk=1"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, withSQLiteForeignKeys(tt.dsn))
		})
	}
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	db := newTestDB(t)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{Database: &config.DatabaseConfig{Driver: "mysql", DSN: "x"}}, nil)
	assert.Error(t, err)

	_, err = Open(&config.Config{}, nil)
	assert.Error(t, err)
}

func TestPoolWatch_Check(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatch{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	ctx := context.Background()

	assert.False(t, w.check(ctx, sql.DBStats{}))
	assert.Empty(t, buf.String())

	assert.True(t, w.check(ctx, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	assert.True(t, w.check(ctx, sql.DBStats{WaitCount: 3, WaitDuration: time.Second}))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")

	buf.Reset()
	assert.False(t, w.check(ctx, sql.DBStats{WaitCount: 3, WaitDuration: time.Second}))
	assert.Empty(t, buf.String())
}
