package database

import (
	"fmt"

	"optica-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Indexes (sale items, sale dates, idempotency keys)
// SQLite cannot add CHECK constraints to existing tables, so the
// non-negativity rules for stock and totals are enforced by the store
// layer rather than the schema.
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Client{},
			&models.Product{},
			&models.Sale{},
			&models.SaleItem{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items (sale_id)`,
			`CREATE INDEX IF NOT EXISTS idx_sale_items_product ON sale_items (product_id)`,
			`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		return nil
	})
}
