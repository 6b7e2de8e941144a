// Package database opens the gorm connection used for seeding.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dashboard-seed-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects with the driver named in cfg. Postgres connections must use
// TLS; sqlite takes POSTGRES_URL as a file path or DSN.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	case config.DriverPostgres, "":
		dsn, err := RequireTLS(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	gl := newGormLogger(log)
	if cfg.LogLevel == "debug" {
		gl.Config.LogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gl})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	if cfg.DBDriver == config.DriverSQLite {
		// Keeps ":memory:" databases on one connection.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("Database connected", slog.String("driver", db.Dialector.Name()))
	return db, nil
}

// OpenFunc is the connector a Provider calls on first use.
type OpenFunc func(ctx context.Context) (*gorm.DB, error)

// Provider creates the connection on first use and reuses it afterwards. A
// failed open is not remembered, so the next call tries again.
type Provider struct {
	open OpenFunc

	mu sync.Mutex
	db *gorm.DB
}

func NewProvider(open OpenFunc) *Provider {
	return &Provider{open: open}
}

// ProviderFor wraps Open with cfg.
func ProviderFor(cfg *config.Config, log *slog.Logger) *Provider {
	return NewProvider(func(context.Context) (*gorm.DB, error) {
		return Open(cfg, log)
	})
}

// Static returns a Provider that always hands out db.
func Static(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

func (p *Provider) DB(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if p.open == nil {
		return nil, fmt.Errorf("database provider has no connector")
	}
	db, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	p.db = db
	return db, nil
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.db = nil
	return sqlDB.Close()
}
