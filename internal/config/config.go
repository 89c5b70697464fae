// Package config loads the application configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration for the task backend.
type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   `yaml:"database"`
	Redis      `yaml:"redis"`
	Session    `yaml:"session"`
	JWT        `yaml:"jwt"`
	Tasks      `yaml:"tasks"`
}

// HTTPServer configures the listening socket.
type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Database configures the PostgreSQL connection.
type Database struct {
	Host          string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password      string `yaml:"password" env:"DB_PASSWORD"`
	Name          string `yaml:"name" env:"DB_NAME" env-default:"task_backend"`
	SSLMode       string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	RunMigrations bool   `yaml:"run_migrations" env:"RUN_MIGRATIONS" env-default:"true"`
}

// DSN builds the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Redis configures the session store connection.
// An empty address disables Redis and sessions fall back to the database.
type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Session configures the browser session lifecycle.
type Session struct {
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"168h"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"session_id"`
}

// JWT configures token signing for the JSON API surface.
type JWT struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

// Tasks configures the listing flow and the access-control policy.
// The guard flags apply one explicit policy per flow instead of the
// per-view mixture the original application had.
type Tasks struct {
	PageSize    int    `yaml:"page_size" env:"TASKS_PAGE_SIZE" env-default:"5"`
	Order       string `yaml:"order" env:"TASKS_ORDER" env-default:"desc"`
	GuardList   bool   `yaml:"guard_list" env:"TASKS_GUARD_LIST" env-default:"false"`
	GuardWrites bool   `yaml:"guard_writes" env:"TASKS_GUARD_WRITES" env-default:"true"`
}

// Load reads the configuration from the given path, falling back to
// environment variables only when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}
		return &cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	return &cfg, nil
}

// MustLoad loads the configuration from CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
