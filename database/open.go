package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/haccp-app/config"
	"github.com/yeremiapane/haccp-app/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Dialector picks the gorm driver for the configured store and reports
// which one it chose.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, string, error) {
	url := strings.TrimSpace(cfg.URL)
	switch {
	case url == "":
		return sqlite.Open(sqliteDSN(cfg.SQLitePath)), DialectSQLite, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), DialectPostgres, nil
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(mysqlDSN(strings.TrimPrefix(url, "mysql://"))), DialectMySQL, nil
	default:
		return nil, "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", redact(url))
	}
}

// InitDB opens the store and sizes its connection pool.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, dialect, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(),
		// timestamps are stored in UTC so day boundaries compare the same on every dialect
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s connection pool: %w", dialect, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxIdleTime(10 * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect, err)
	}

	utils.InfoLogger.WithField("dialect", dialect).Info("database connected")
	return db, nil
}

// sqliteDSNParams make concurrent writers queue for the file lock instead of
// failing with "database is locked". Transactions take the write lock on
// BEGIN so a read-then-write transaction never has to upgrade.
const sqliteDSNParams = "_foreign_keys=1&_busy_timeout=5000&_txlock=immediate"

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteDSNParams
	}
	return path + "?" + sqliteDSNParams
}

// mysqlDSN makes sure timestamps scan into time.Time.
func mysqlDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true&charset=utf8mb4"
	}
	return dsn + "?parseTime=true&charset=utf8mb4"
}

// redact hides credentials in a connection URL before it is logged.
func redact(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}

// gormLogWriter forwards gorm's log lines to the error logger. gorm only
// prints at warn level or worse, and logrus Printf would emit at info.
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	utils.ErrorLogger.Warnf(format, args...)
}

func newGormLogger() logger.Interface {
	return logger.New(gormLogWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
