package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	LockDriverLocal = "local"
	LockDriverRedis = "redis"
)

type Config struct {
	App   AppConfig
	Log   LogConfig
	Store StoreConfig
	DB    DBConfig
	Lock  LockConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

type LogConfig struct {
	Level string
}

type StoreConfig struct {
	Driver string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type LockConfig struct {
	Driver string
	TTL    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load reads the .env file at path, if present, and lets environment
// variables override it. An empty path means ".env" in the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ".env"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "hospital")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("LOCK_DRIVER", LockDriverLocal)
	v.SetDefault("LOCK_TTL", "10s")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	// Missing .env is fine; the environment and defaults still apply.
	_ = v.ReadInConfig()

	cfg := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Lock: LockConfig{
			Driver: v.GetString("LOCK_DRIVER"),
			TTL:    v.GetDuration("LOCK_TTL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList parses a comma separated value, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, c.Store.Driver)
	}
	switch c.Lock.Driver {
	case LockDriverLocal, LockDriverRedis:
	default:
		return fmt.Errorf("LOCK_DRIVER must be %q or %q, got %q", LockDriverLocal, LockDriverRedis, c.Lock.Driver)
	}
	if c.Lock.TTL <= 0 {
		return fmt.Errorf("LOCK_TTL must be positive, got %s", c.Lock.TTL)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
