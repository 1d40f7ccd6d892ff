// Command migrate applies the embedded goose migrations to the configured
// database. --down rolls the latest migration back instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kotobachat/kotoba-backend/internal/app"
	"github.com/kotobachat/kotoba-backend/internal/config"
	"github.com/kotobachat/kotoba-backend/migrations"
)

func main() {
	down := flag.Bool("down", false, "roll back the latest migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *down {
		err = goose.Down(db, ".")
	} else {
		err = goose.Up(db, ".")
	}
	if err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		logger.Error("read version", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Int64("version", version))
}
