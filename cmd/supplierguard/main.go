package main

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"github.com/vantix-dev/supplierguard/database"
	"github.com/vantix-dev/supplierguard/echohttp"
	"github.com/vantix-dev/supplierguard/router"
	"github.com/vantix-dev/supplierguard/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg := database.GetPoolConfigFromEnv()

	firstRun, err := database.EnsureDatabaseExists(cfg)
	if err != nil {
		slog.Error("could not provision database", "err", err)
		os.Exit(1)
	}

	pool, err := database.NewPgxConnPool(cfg)
	if err != nil {
		slog.Error("could not create connection pool", "err", err)
		os.Exit(1)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		os.Exit(1)
	}

	if err := database.CreateTables(db); err != nil {
		slog.Error("could not create tables", "err", err)
		os.Exit(1)
	}

	err = database.SeedIfNew(db, firstRun,
		viper.GetString("SUPPLIER_SEED_FILE"),
		viper.GetString("COMPLIANCE_SEED_FILE"),
	)
	if err != nil {
		slog.Error("could not seed database", "err", err)
		os.Exit(1)
	}

	e := echohttp.Server()
	if err := router.RegisterRoutes(e, db); err != nil {
		slog.Error("could not register routes", "err", err)
		os.Exit(1)
	}

	port := viper.GetString("PORT")
	slog.Info("starting server", "port", port)
	if err := e.Start(":" + port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
