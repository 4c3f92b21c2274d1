package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/postgres"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	timeout := flag.Duration("timeout", 30*time.Second, "Time allowed for all migrations")
	flag.Parse()

	if *dryRun {
		migrations, err := postgres.Migrations()
		if err != nil {
			log.Fatalf("Failed to read migrations: %v", err)
		}
		for _, m := range migrations {
			fmt.Printf("-- %s\n%s\n", m.Version, m.SQL)
		}
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)
	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logger.Info("Running database migrations...")
	applied, err := db.Migrate(ctx)
	if err != nil {
		logger.Fatalw("Failed to apply migrations", "error", err)
	}

	if len(applied) == 0 {
		logger.Info("Schema is up to date")
	} else {
		logger.Infow("Migration completed successfully", "applied", applied)
	}

	fmt.Println("Migration process completed")
}
