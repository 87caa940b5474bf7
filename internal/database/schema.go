package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// schema is applied statement by statement; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL,
    description         TEXT,
    price               INTEGER NOT NULL,
    image_url           TEXT,
    category            TEXT,
    is_available        BOOLEAN NOT NULL DEFAULT TRUE,
    created_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    telegram_message_id INTEGER
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
}

// EnsureSchema creates the products table and its indexes if they don't
// already exist. Existing rows are left untouched.
func EnsureSchema(ctx context.Context, p *Provider) error {
	return p.WithConn(ctx, func(db *gorm.DB) error {
		for i, stmt := range schema {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("applying schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}
