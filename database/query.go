package database

import (
	"context"
	"database/sql"
	"fmt"
	"foodmenu_server/config"
	"foodmenu_server/structs"
	"log"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database connection with additional functionality
type DB struct {
	*bun.DB
}

var instance *DB

// Connect establishes a connection to the database using centralized configuration
func Connect() (*DB, error) {
	logger := config.GetLogger()
	dbCfg := config.GetConfig().Database

	sqldb, err := openSQLDB(dbCfg)
	if err != nil {
		return nil, err
	}

	// Apply pool settings from configuration
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := Wrap(bun.NewDB(sqldb, pgdialect.New()), logger, dbCfg.SlowQuery)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully", gecho.Field("driver", dbCfg.Driver))

	return db, nil
}

// Wrap attaches the query hook to an already opened bun database
func Wrap(bunDB *bun.DB, logger *gecho.Logger, slowQuery time.Duration) *DB {
	bunDB.AddQueryHook(&connectionHealthHook{logger: logger, slowQuery: slowQuery})
	return &DB{bunDB}
}

func openSQLDB(dbCfg *structs.DatabaseConfig) (*sql.DB, error) {
	addr := fmt.Sprintf("%s:%d", dbCfg.Host, dbCfg.Port)

	switch strings.ToLower(dbCfg.Driver) {
	case "pgx":
		sslMode := "disable"
		if dbCfg.SSLMode {
			sslMode = "require"
		}
		dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			dbCfg.User, dbCfg.Password, addr, dbCfg.Name, sslMode)

		connCfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid pgx configuration: %w", err)
		}
		return stdlib.OpenDB(*connCfg), nil

	case "", "pgdriver":
		connector := pgdriver.NewConnector(
			pgdriver.WithAddr(addr),
			pgdriver.WithUser(dbCfg.User),
			pgdriver.WithPassword(dbCfg.Password),
			pgdriver.WithDatabase(dbCfg.Name),
			pgdriver.WithInsecure(!dbCfg.SSLMode),
			pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
			pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
			pgdriver.WithApplicationName(config.GetConfig().Server.AppName),
		)
		return sql.OpenDB(connector), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}
}

// Initialize sets up the global database instance using centralized configuration
func Initialize() error {
	db, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	instance = db
	return nil
}

// GetInstance returns the global database instance
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global database instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// connectionHealthHook implements bun.QueryHook to log slow and failing queries
type connectionHealthHook struct {
	logger    *gecho.Logger
	slowQuery time.Duration
}

var _ bun.QueryHook = (*connectionHealthHook)(nil)

func (h *connectionHealthHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *connectionHealthHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	if h.slowQuery > 0 && duration > h.slowQuery {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}

	// Handle EOF errors specifically
	if event.Err != nil {
		if event.Err.Error() == "EOF" || event.Err.Error() == "unexpected EOF" {
			h.logger.Error("Database connection EOF error - connection may have been closed by server",
				gecho.Field("error", event.Err),
				gecho.Field("query", event.Query),
			)
		}
	}
}
