package database

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/yeremiapane/order-api/models"
	"github.com/yeremiapane/order-api/utils"
	"gorm.io/gorm"
)

//go:embed migrations/indexes.sql
var indexesSQL string

// Models lists every persisted model in dependency order.
var Models = []interface{}{
	&models.Customer{},
	&models.Item{},
	&models.Order{},
	&models.OrderItem{},
}

// Migrate membuat/menyesuaikan tabel lalu menjalankan statement di
// migrations/indexes.sql. Aman dipanggil berulang kali.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	for _, stmt := range splitStatements(indexesSQL) {
		if err := execIndex(db, stmt); err != nil {
			return fmt.Errorf("execute %q: %w", stmt, err)
		}
	}
	return nil
}

// execIndex menjalankan satu CREATE INDEX. MySQL tidak mengenal
// "IF NOT EXISTS" untuk index, jadi di sana index yang sudah ada dilewati
// lewat Migrator.
func execIndex(db *gorm.DB, stmt string) error {
	if db.Dialector.Name() != "mysql" {
		return db.Exec(stmt).Error
	}

	fields := strings.Fields(stmt)
	// CREATE INDEX IF NOT EXISTS <name> ON <table> (...)
	if len(fields) < 8 {
		return fmt.Errorf("unexpected index statement")
	}
	name, table := fields[5], fields[7]
	if db.Migrator().HasIndex(table, name) {
		return nil
	}
	return db.Exec(strings.Replace(stmt, "IF NOT EXISTS ", "", 1)).Error
}

func splitStatements(script string) []string {
	var out []string
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
