package gormrepo

import (
	"context"
	"testing"

	"recipebox/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with every table created.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			MaxOpenConns: 1,
		},
	}

	db, err := Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
