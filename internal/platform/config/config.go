package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath   = "app_config.yaml"
	DefaultDBPath = "Employee.db"
	DefaultTheme  = "Light"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	KeyDBPath = "db_path"
	KeyTheme  = "theme"

	DefaultLogLevel = "warn"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	DBPath   string         `yaml:"db_path"`
	Theme    string         `yaml:"theme"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// DatabaseConfig は永続化先の選択です。既定は db_path の SQLite ファイルです。
type DatabaseConfig struct {
	Driver   string         `yaml:"driver,omitempty"`
	Postgres PostgresConfig `yaml:"postgres,omitempty"`
}

// PostgresConfig は PostgreSQL 接続に関する設定です。
type PostgresConfig struct {
	Host               string        `yaml:"host,omitempty"`
	Port               int           `yaml:"port,omitempty"`
	User               string        `yaml:"user,omitempty"`
	Password           string        `yaml:"password,omitempty"`
	Name               string        `yaml:"name,omitempty"`
	SSLMode            string        `yaml:"ssl_mode,omitempty"`
	MaxOpenConns       int           `yaml:"max_open_conns,omitempty"`
	MaxIdleConns       int           `yaml:"max_idle_conns,omitempty"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime,omitempty"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time,omitempty"`
}

// LoggingConfig はログ出力に関する設定です。
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // json, console
	Output string `yaml:"output,omitempty"` // stderr, stdout, or file path
}

// Default は組み込みの既定値を返します。
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load は指定されたパスから設定ファイルを読み込みます。
// 戻り値の *Config は常に利用可能で、ファイルが存在しない・読めない・壊れている場合は既定値になります。
// error はファイルがあるのに既定値へ戻した理由を表します。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse yaml: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save は現在の設定を YAML として書き出します。
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("config: write file %s: %w", path, err)
	}
	return nil
}

// Set は利用者が変更できるキーを更新します。
func (c *Config) Set(key, value string) error {
	if value == "" {
		return fmt.Errorf("config: %s must not be empty", key)
	}
	switch key {
	case KeyDBPath:
		c.DBPath = value
	case KeyTheme:
		c.Theme = value
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}

// Get は利用者が参照できるキーの値を返します。
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyDBPath:
		return c.DBPath, nil
	case KeyTheme:
		return c.Theme, nil
	default:
		return "", fmt.Errorf("config: unknown key %q", key)
	}
}

func (c *Config) applyDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
}

// Validate は PostgreSQL 接続設定を検証し、期間指定を解釈します。
func (d *PostgresConfig) Validate() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.postgres.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.postgres.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.postgres.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.postgres.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.postgres.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.postgres.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.postgres.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx および golang-migrate 用の接続文字列を返します。
func (d PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
