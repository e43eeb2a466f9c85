package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	pgrepo "github.com/ogurasousui/codex-employee-roster/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
)

func main() {
	configPath := flag.String("config", "", "path to settings file (defaults to ROSTER_CONFIG env or app_config.yaml)")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	cfgPath := effectiveConfigPath(*configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("database.driver is %q; migrations apply to %q only", cfg.Database.Driver, config.DriverPostgres)
	}

	pgCfg := cfg.Database.Postgres
	if err := pgCfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := runMigration(action, pgCfg.DSN()); err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	log.Printf("migration %s completed", action)
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("ROSTER_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath
}

func runMigration(action, dsn string) error {
	m, err := pgrepo.NewMigrate(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Printf("no migration applied")
				return nil
			}
			return err
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
