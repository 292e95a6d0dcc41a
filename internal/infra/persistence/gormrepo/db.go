// Package gormrepo implements the persistence layer with GORM on PostgreSQL or SQLite.
package gormrepo

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/lifecycle"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database and ties ping, table creation and close to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			go watchDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open builds a *gorm.DB for the configured driver, replicas and pool limits.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg == nil || cfg.Database == nil {
		return nil, errors.New("database configuration is missing")
	}
	dbCfg := cfg.Database

	dialector, err := newDialector(dbCfg.Driver, dbCfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", dbCfg.Driver)
	}

	if len(dbCfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(dbCfg.Replicas))
		for _, dsn := range dbCfg.Replicas {
			replica, err := newDialector(dbCfg.Driver, dsn)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, replica)
		}

		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate creates missing tables and indexes. Existing columns are never dropped.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to create tables")
	}

	return nil
}

func newDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(withSQLiteForeignKeys(dsn)), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
}

// withSQLiteForeignKeys turns on FK enforcement for every pooled connection.
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_foreign_keys=on"
}

// poolWatch compares successive pool samples and logs connection waits.
type poolWatch struct {
	logger *slog.Logger
	last   sql.DBStats
}

// check logs the waits since the previous sample. It reports whether any happened.
func (w *poolWatch) check(ctx context.Context, stats sql.DBStats) bool {
	waits := stats.WaitCount - w.last.WaitCount
	waited := stats.WaitDuration - w.last.WaitDuration
	w.last = stats

	if waits <= 0 {
		return false
	}

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Requests waited for a database connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Int("inUse", stats.InUse),
		slog.Int("open", stats.OpenConnections),
		slog.Int("maxOpen", stats.MaxOpenConnections),
	)

	return true
}

func watchDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	w := &poolWatch{logger: logger, last: sqlDB.Stats()}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx, sqlDB.Stats())
		}
	}
}
