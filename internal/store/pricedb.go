package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/metehanbayar/orman/config"
	"github.com/metehanbayar/orman/internal/models"
)

// posMenuPricesQuery walks the SambaPOS menu hierarchy down to the base
// price of every portion on the active screen menus.
const posMenuPricesQuery = `
SELECT
    smc.Name AS category,
    mi.Name AS product,
    mip.Name AS portion,
    mip.Id AS portion_id,
    mipr.Id AS prices_id,
    mipr.Price AS price
FROM ScreenMenuItems smi
INNER JOIN ScreenMenuCategories smc ON smi.ScreenMenuCategoryId = smc.Id
INNER JOIN ScreenMenus sm ON smc.ScreenMenuId = sm.Id
INNER JOIN MenuItems mi ON smi.MenuItemId = mi.Id
INNER JOIN MenuItemPortions mip ON mi.Id = mip.MenuItemId
INNER JOIN MenuItemPrices mipr ON mip.Id = mipr.MenuItemPortionId
WHERE mipr.PriceTag IS NULL
ORDER BY smc.Name, mi.Name, mip.Name`

// PriceDB reads current prices from the restaurant's POS database.
type PriceDB struct {
	db *gorm.DB
}

// NewPriceDB opens a connection to the configured POS database. The
// sqlite dialect exists for tests; production points at SQL Server.
func NewPriceDB(cfg config.PriceDBConfig) (*PriceDB, error) {
	var dialector gorm.Dialector
	switch cfg.Dialect {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database)
	case "", "sqlserver":
		dialector = sqlserver.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported price database dialect: %s", cfg.Dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to price database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping price database: %w", err)
	}

	log.Printf("[PriceDB] Connected to %s price database", dialectName(cfg.Dialect))
	return &PriceDB{db: db}, nil
}

// OpenPriceDB wraps an existing gorm handle, used by tests.
func OpenPriceDB(db *gorm.DB) *PriceDB {
	return &PriceDB{db: db}
}

// FetchPrices returns every portion price on the active POS menus.
func (p *PriceDB) FetchPrices(ctx context.Context) ([]models.PriceRow, error) {
	var rows []models.PriceRow
	if err := p.db.WithContext(ctx).Raw(posMenuPricesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query menu prices: %w", err)
	}
	return rows, nil
}

// Ping verifies the POS connection is alive.
func (p *PriceDB) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (p *PriceDB) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectName(dialect string) string {
	if dialect == "" {
		return "sqlserver"
	}
	return dialect
}
