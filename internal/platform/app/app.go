// Package app は設定に従ってストア・サービス・エクスポーターを組み立て、そのライフサイクルを管理します。
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ogurasousui/codex-employee-roster/internal/adapters/export"
	pgrepo "github.com/ogurasousui/codex-employee-roster/internal/adapters/repository/postgres"
	sqliterepo "github.com/ogurasousui/codex-employee-roster/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
	pgdb "github.com/ogurasousui/codex-employee-roster/internal/platform/db/postgres"
	sqlitedb "github.com/ogurasousui/codex-employee-roster/internal/platform/db/sqlite"
	"go.uber.org/zap"
)

// App は組み立て済みのサービス群です。
type App struct {
	Records *employee.Service
	Exports *export.Exporter

	closeFn   func() error
	closeOnce sync.Once
	closeErr  error
}

// Open は cfg.Database.Driver に応じたストアへ接続し、スキーマを用意します。
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		repo    employee.Repository
		tx      employee.TransactionManager
		closeFn func() error
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlitedb.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := sqliterepo.Migrate(db); err != nil {
			_ = sqlitedb.Close(db)
			return nil, err
		}
		repo = sqliterepo.NewEmployeeRepository(db)
		closeFn = func() error { return sqlitedb.Close(db) }
		logger.Debug("store opened", zap.String("driver", config.DriverSQLite), zap.String("path", cfg.DBPath))

	case config.DriverPostgres:
		pgCfg := cfg.Database.Postgres
		if err := pgCfg.Validate(); err != nil {
			return nil, err
		}
		if err := pgrepo.EnsureSchema(pgCfg.DSN()); err != nil {
			return nil, err
		}
		pool, err := pgdb.NewPool(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		repo = pgrepo.NewEmployeeRepository(pool)
		tx = pgdb.NewTransactionManager(pool)
		closeFn = func() error {
			pool.Close()
			return nil
		}
		logger.Debug("store opened", zap.String("driver", config.DriverPostgres), zap.String("host", pgCfg.Host))

	default:
		return nil, fmt.Errorf("app: unsupported database driver %q", cfg.Database.Driver)
	}

	records := employee.NewService(repo, tx, logger)
	return &App{
		Records: records,
		Exports: export.NewExporter(records, logger),
		closeFn: closeFn,
	}, nil
}

// Close はストアへの接続を解放します。複数回呼んでも安全です。
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		if a.closeFn != nil {
			a.closeErr = a.closeFn()
		}
	})
	return a.closeErr
}
