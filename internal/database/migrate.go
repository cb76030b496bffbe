package database

import (
	"context"
	_ "embed"
	"fmt"

	"mwell-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schema string

// Migrate creates any missing tables and indexes. It is safe to run on
// every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("database schema applied")
	return nil
}

func ptr[T any](v T) *T { return &v }

// Catalog is the storefront's launch range, inserted by SeedCatalog.
var Catalog = []model.Product{
	{ID: "mv-001", Name: "M-Well Multi Vitamin Softgel", Description: "Daily immunity, energy and wellness softgel.", Brand: "M-Well", Category: "Daily Essentials", Price: 959, OriginalPrice: ptr(1599.0), DiscountPercent: ptr(40), InStock: true},
	{ID: "mc-002", Name: "M-Well Men Care Premium Concentrated Drink", Description: "Ayurvedic stamina and vitality blend for men.", Brand: "M-Well", Category: "Personal Care", Price: 1199, OriginalPrice: ptr(1999.0), DiscountPercent: ptr(40), InStock: true},
	{ID: "sh-003", Name: "M-Well Super Herbs Veg Capsules", Description: "Herbal immunity and energy capsules.", Brand: "M-Well", Category: "Daily Essentials", Price: 1199, OriginalPrice: ptr(1999.0), DiscountPercent: ptr(40), InStock: true},
	{ID: "ac-004", Name: "M-Well All Clear Tablets", Description: "Ayurvedic digestive detox formula.", Brand: "M-Well", Category: "Daily Essentials", Price: 1079, OriginalPrice: ptr(1799.0), InStock: true},
	{ID: "aa-005", Name: "M-Well Anti Anxiety Drops", Description: "Natural stress and anxiety relief drops.", Brand: "M-Well", Category: "Personal Care", Price: 1019, OriginalPrice: ptr(1699.0), DiscountPercent: ptr(40), InStock: true},
	{ID: "wc-006", Name: "M-Well Women Care Syrup", Description: "Hormonal balance support for PCOD/PCOS.", Brand: "M-Well", Category: "Personal Care", Price: 359, OriginalPrice: ptr(599.0), DiscountPercent: ptr(40), InStock: true},
	{ID: "ad-007", Name: "M-Well Anti Addiction Drops", Description: "Herbal support to quit smoking, alcohol and gutkha.", Brand: "M-Well", Category: "Anti Anxiety & Addiction", Price: 1139, OriginalPrice: ptr(1899.0), DiscountPercent: ptr(40), InStock: true},
}

// SeedCatalog inserts the launch catalog, leaving existing rows untouched.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	batch := &pgx.Batch{}
	for _, p := range Catalog {
		batch.Queue(`
			INSERT INTO products (id, name, description, brand, category, price, original_price, discount_percent, in_stock)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Description, p.Brand, p.Category, p.Price, p.OriginalPrice, p.DiscountPercent, p.InStock,
		)
	}

	results := pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := int64(0)
	for _, p := range Catalog {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
		inserted += tag.RowsAffected()
	}

	logger.Info().Int64("inserted", inserted).Msg("product catalog seeded")
	return nil
}
