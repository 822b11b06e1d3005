package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-api/config"
	"github.com/yeremiapane/order-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(&config.Config{
		DBDriver:       config.DriverSQLite,
		DBDSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	m := db.Migrator()
	for _, table := range []string{"customers", "items", "orders", "order_list"} {
		assert.True(t, m.HasTable(table), table)
	}
	assert.True(t, m.HasIndex("order_list", "idx_order_list_order_id"))
	assert.True(t, m.HasIndex("order_list", "idx_order_list_item_id"))
}

func TestSplitStatements(t *testing.T) {
	script := "-- comment\nCREATE INDEX a ON t (x);\n\n-- another\nCREATE INDEX b ON t (y);\n"
	assert.Equal(t, []string{"CREATE INDEX a ON t (x)", "CREATE INDEX b ON t (y)"}, splitStatements(script))
}

func TestLoadSeedFileFormats(t *testing.T) {
	fromJSON, err := LoadSeedFile(filepath.Join("testdata", "orders.json"))
	require.NoError(t, err)
	fromYAML, err := LoadSeedFile(filepath.Join("testdata", "orders.yaml"))
	require.NoError(t, err)

	require.Len(t, fromJSON, 3)
	assert.Equal(t, fromJSON, fromYAML)
	require.NotNil(t, fromJSON[0].Notes)
	assert.Equal(t, "no onions", *fromJSON[0].Notes)
	assert.Nil(t, fromJSON[1].Notes)
}

func TestLoadSeedFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,phone\n"), 0o600))

	_, err := LoadSeedFile(path)
	assert.ErrorContains(t, err, "unsupported seed file extension")
}

func TestSeedDeduplicates(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	orders, err := LoadSeedFile(filepath.Join("testdata", "orders.json"))
	require.NoError(t, err)

	summary, err := Seed(context.Background(), db, orders)
	require.NoError(t, err)
	assert.Equal(t, SeedSummary{Customers: 2, Items: 2, Orders: 3, Links: 4}, summary)

	var ada models.Customer
	require.NoError(t, db.Where("phone = ?", "5550001111").First(&ada).Error)
	assert.Equal(t, "Ada Lovelace", ada.Name)

	var pizza models.Item
	require.NoError(t, db.Where("name = ?", "Pizza").First(&pizza).Error)
	assert.Equal(t, 12.5, pizza.Price)

	var links int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("item_id = ?", pizza.ID).Count(&links).Error)
	assert.Equal(t, int64(3), links)
}

func TestSeedReusesExistingRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	orders, err := LoadSeedFile(filepath.Join("testdata", "orders.yaml"))
	require.NoError(t, err)

	_, err = Seed(context.Background(), db, orders)
	require.NoError(t, err)
	summary, err := Seed(context.Background(), db, orders)
	require.NoError(t, err)
	assert.Equal(t, SeedSummary{Orders: 3, Links: 4}, summary)

	var customers, items int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&items).Error)
	assert.Equal(t, int64(2), customers)
	assert.Equal(t, int64(2), items)
}
