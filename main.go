package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"foodmenu_server/api"
	"foodmenu_server/config"
	"foodmenu_server/database"
	"foodmenu_server/messaging"
	"foodmenu_server/services"
	"foodmenu_server/structs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

var seedOnly = flag.Bool("seed", false, "load the starter menu and sample orders, then exit")

// init function to load environment variables and initialize logger and database
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.GetInstance()

	if cfg.Database.AutoMigrate {
		if err := database.CreateSchema(ctx, db); err != nil {
			logger.Fatal("Failed to create database schema", gecho.Field("error", err))
		}
		logger.Info("Database schema is up to date")
	}

	if *seedOnly {
		seed(ctx, db)
		return
	}

	var broker *messaging.Client
	if cfg.Broker.Enabled {
		var err error
		if broker, err = messaging.Dial(cfg.Broker); err != nil {
			logger.Fatal("Failed to connect to message broker", gecho.Field("error", err))
		}
		logger.Info("Connected to message broker", gecho.Field("exchange", cfg.Broker.Exchange))
	}

	sm := services.NewServiceManager(logger, cfg, db, broker)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", gecho.Field("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal, draining connections")

	shutdown(srv, sm, broker)
}

// seed loads the starter data and closes the database. A failed run exits non-zero with nothing written.
func seed(ctx context.Context, db *database.DB) {
	result, err := database.Seed(ctx, db)
	if closeErr := database.CloseInstance(); closeErr != nil {
		logger.Warn("Failed to close database", gecho.Field("error", closeErr))
	}
	if err != nil {
		logger.Fatal("Seeding failed, nothing was written", gecho.Field("error", err))
	}

	logger.Info("Seeding complete",
		gecho.Field("categories", result.Categories),
		gecho.Field("items", result.Items),
		gecho.Field("products", result.Products),
		gecho.Field("product_items", result.ProductItems),
		gecho.Field("orders", result.Orders),
	)
}

// shutdown stops accepting requests and then releases the backing connections
func shutdown(srv *http.Server, sm *services.ServiceManager, broker *messaging.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown did not complete", gecho.Field("error", err))
	}

	if broker != nil {
		broker.Close()
	}

	if err := sm.CacheService.Close(); err != nil {
		logger.Warn("Failed to close cache connection", gecho.Field("error", err))
	}

	if err := database.CloseInstance(); err != nil {
		logger.Warn("Failed to close database", gecho.Field("error", err))
	}

	logger.Info("Shutdown complete")
}
