package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"arena/internal/config"
)

func main() {
	var (
		path = flag.String("path", "migrations", "path to migration files")
		down = flag.Bool("down", false, "roll back all migrations instead of applying them")
	)
	flag.Parse()

	cfg := config.Load()

	m, err := migrate.New("file://"+*path, connString(cfg.Database))
	if err != nil {
		log.Fatalf("failed to initialize migrations: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("No migrations to apply")
			return
		}
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("Migrations applied")
}

func connString(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
}
