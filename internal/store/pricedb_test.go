package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPOSFixture builds a miniature POS menu schema with one category, two
// products and three priced portions, plus one tagged price the sync
// query must skip.
func newPOSFixture(t *testing.T) *PriceDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE ScreenMenus (Id INTEGER PRIMARY KEY)`,
		`CREATE TABLE ScreenMenuCategories (Id INTEGER PRIMARY KEY, ScreenMenuId INTEGER, Name TEXT)`,
		`CREATE TABLE ScreenMenuItems (Id INTEGER PRIMARY KEY, ScreenMenuCategoryId INTEGER, MenuItemId INTEGER)`,
		`CREATE TABLE MenuItems (Id INTEGER PRIMARY KEY, Name TEXT)`,
		`CREATE TABLE MenuItemPortions (Id INTEGER PRIMARY KEY, MenuItemId INTEGER, Name TEXT)`,
		`CREATE TABLE MenuItemPrices (Id INTEGER PRIMARY KEY, MenuItemPortionId INTEGER, Price REAL, PriceTag TEXT)`,

		`INSERT INTO ScreenMenus (Id) VALUES (1)`,
		`INSERT INTO ScreenMenuCategories (Id, ScreenMenuId, Name) VALUES (1, 1, 'Kebaplar')`,
		`INSERT INTO MenuItems (Id, Name) VALUES (1, 'Adana Kebap'), (2, 'Ayran')`,
		`INSERT INTO ScreenMenuItems (Id, ScreenMenuCategoryId, MenuItemId) VALUES (1, 1, 1), (2, 1, 2)`,
		`INSERT INTO MenuItemPortions (Id, MenuItemId, Name) VALUES (1, 1, 'Porsiyon'), (2, 1, '1.5 Porsiyon'), (3, 2, 'Normal')`,
		`INSERT INTO MenuItemPrices (Id, MenuItemPortionId, Price, PriceTag) VALUES (1, 1, 185.5, NULL), (2, 2, 250, NULL), (3, 3, 35, NULL)`,
		`INSERT INTO MenuItemPrices (Id, MenuItemPortionId, Price, PriceTag) VALUES (4, 1, 170, 'HAPPYHOUR')`,
	}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return OpenPriceDB(db)
}

func TestFetchPrices(t *testing.T) {
	ctx := context.Background()
	db := newPOSFixture(t)

	rows, err := db.FetchPrices(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3, "tagged prices are excluded")

	// Ordered by category, product, portion.
	assert.Equal(t, "Adana Kebap", rows[0].Product)
	assert.Equal(t, "1.5 Porsiyon", rows[0].Portion)
	assert.Equal(t, 250.0, rows[0].Price)

	assert.Equal(t, "Adana Kebap", rows[1].Product)
	assert.Equal(t, "Porsiyon", rows[1].Portion)
	assert.Equal(t, 185.5, rows[1].Price)

	assert.Equal(t, "Ayran", rows[2].Product)
	assert.Equal(t, "Normal", rows[2].Portion)
	assert.Equal(t, "Kebaplar", rows[2].Category)
}

func TestPriceDBPing(t *testing.T) {
	db := newPOSFixture(t)
	assert.NoError(t, db.Ping(context.Background()))
}
