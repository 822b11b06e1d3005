package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/order-api/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB membuka pool koneksi sesuai cfg.DBDriver. Pool ini dipakai bersama
// oleh semua request; setiap query/transaksi meminjam koneksi lalu
// mengembalikannya ke pool.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite, "":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBDSN))
	case DriverMySQL:
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(utils.InfoLogger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	utils.InfoLogger.Infof("Connected to %s database (max_open_conns=%d)", cfg.DBDriver, cfg.DBMaxOpenConns)
	return db, nil
}

// SQLiteDSN menambahkan pragma yang dibutuhkan ke DSN go-sqlite3:
//   - foreign key enforcement
//   - 5 second busy timeout for lock contention
//   - WAL journal for file databases
//
// Parameter yang sudah ada di DSN tidak ditimpa.
func SQLiteDSN(dsn string) string {
	params := []string{"_foreign_keys=on", "_busy_timeout=5000"}
	if !strings.Contains(dsn, "mode=memory") && !strings.Contains(dsn, ":memory:") {
		params = append(params, "_journal_mode=WAL")
	}

	for _, p := range params {
		key := p[:strings.Index(p, "=")+1]
		if strings.Contains(dsn, key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + p
		} else {
			dsn += "?" + p
		}
	}
	return dsn
}
