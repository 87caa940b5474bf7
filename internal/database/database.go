package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Provider hands out a private database handle per unit of work. Handles are
// never pooled or shared: each call to WithConn opens the file and closes it
// again before returning.
type Provider struct {
	path   string
	logger logger.Interface
}

// NewProvider creates a Provider for the SQLite file at path.
func NewProvider(path string) *Provider {
	return &Provider{
		path: path,
		logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Path returns the database file this provider opens.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) open() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=5000", p.path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 p.logger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", p.path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// WithConn opens a handle, passes it to fn and closes it on every exit path,
// including when fn returns an error or panics.
func (p *Provider) WithConn(ctx context.Context, fn func(db *gorm.DB) error) (err error) {
	db, err := p.open()
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing database: %w", cerr)
		}
	}()

	return fn(db.WithContext(ctx))
}

// Ping checks that the database file can be opened and queried.
func (p *Provider) Ping(ctx context.Context) error {
	return p.WithConn(ctx, func(db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}
