package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.PostgresConfig{
		Host:               "localhost",
		Port:               15432,
		User:               "user",
		Password:           "pass",
		Name:               "roster",
		SSLMode:            "disable",
		MaxOpenConns:       20,
		MaxIdleConns:       5,
		ConnMaxLifetimeRaw: "30m",
		ConnMaxIdleTimeRaw: "10m",
	}

	poolCfg, err := BuildPoolConfig(dbCfg)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "roster" {
		t.Errorf("expected database roster, got %s", poolCfg.ConnConfig.Database)
	}
}

func TestBuildPoolConfig_DefaultsToSingleConnection(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		Name:     "roster",
	})
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}
	if poolCfg.MaxConns != 1 {
		t.Errorf("expected MaxConns 1, got %d", poolCfg.MaxConns)
	}
}

func TestBuildPoolConfig_InvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := BuildPoolConfig(config.PostgresConfig{Host: "localhost"}); err == nil {
		t.Fatal("expected validation error")
	}
}
