// Package storage opens the relational database behind the REST server and
// applies its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/finance-tracker/db"
	"github.com/frahmantamala/finance-tracker/internal"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	txDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const migrationsTable = "schema_migrations"

type Database struct {
	Driver string
	Gorm   *gorm.DB
	SQL    *sql.DB
}

func (d *Database) Close() error {
	return d.SQL.Close()
}

// Open connects according to cfg. Postgres goes through a pgx-backed sqlx
// pool that gorm reuses; sqlite is opened by gorm directly.
func Open(cfg internal.DatabaseConfig, logger *slog.Logger) (*Database, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.Driver {
	case internal.DriverSQLite:
		gdb, err := gorm.Open(sqlite.Open(cfg.Source), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// one writer keeps sqlite from reporting "database is locked"
		sqlDB.SetMaxOpenConns(1)
		logger.Info("database connected", "driver", cfg.Driver)
		return &Database{Driver: cfg.Driver, Gorm: gdb, SQL: sqlDB}, nil

	case internal.DriverPostgres, "":
		const driver = "pgx"
		dbConn, err := sqlx.Connect(driver, cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to open db connection: %w", err)
		}

		dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
		dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
		dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

		gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: dbConn.DB}), gormCfg)
		if err != nil {
			_ = dbConn.Close()
			return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
		}
		logger.Info("database connected", "driver", internal.DriverPostgres)
		return &Database{Driver: internal.DriverPostgres, Gorm: gdb, SQL: dbConn.DB}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// AutoMigrate creates the tables from the datamodels. It is used for sqlite
// and in tests; postgres deployments run Migrate instead.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&txDatamodel.Transaction{}, &budgetDatamodel.Budget{})
}

// Migrate runs goose "up", or "down" when rollback is set. An empty dir uses
// the migrations compiled into the binary; otherwise dir is read from disk.
func Migrate(ctx context.Context, d *Database, dir string, rollback bool) error {
	if dir == "" {
		goose.SetBaseFS(db.Migrations)
		dir = db.MigrationsDir
	} else {
		goose.SetBaseFS(nil)
	}

	dialect := "postgres"
	if d.Driver == internal.DriverSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	goose.SetTableName(migrationsTable)

	command := "up"
	if rollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, d.SQL, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
