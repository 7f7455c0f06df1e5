package config

import (
	"fmt"
	"log"
	"time"

	"community-watch/internal/adapters/persistence/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

// ConnectDatabase opens the configured database and stores it globally
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}

	// Set global DB instance
	DB = db

	log.Printf("✅ Database connected successfully [%s]", describe(cfg.Database))
	return db, nil
}

// OpenDatabase establishes a connection using the configured driver
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger based on mode
	var gormLogger logger.Interface
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true, // writes run in explicit transactions
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Database.Driver == DriverSQLite {
		// sqlite allows one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// buildDialector picks the gorm driver for the configured database
func buildDialector(d DatabaseConfig) (gorm.Dialector, error) {
	switch d.Driver {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(d.SQLitePath)), nil
	case DriverPostgres:
		return postgres.Open(d.URL), nil
	case DriverMySQL:
		return mysql.Open(buildMySQLDSN(d)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", d.Driver)
	}
}

// sqliteDSN enables foreign keys so ON DELETE CASCADE is honoured
func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// buildMySQLDSN returns the mysql connection string
func buildMySQLDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

// describe renders the connection target without credentials
func describe(d DatabaseConfig) string {
	switch d.Driver {
	case DriverSQLite:
		return "sqlite:" + d.SQLitePath
	case DriverMySQL:
		return fmt.Sprintf("mysql:%s:%s/%s", d.Host, d.Port, d.DBName)
	default:
		return d.Driver
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database migrated")
	return nil
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
