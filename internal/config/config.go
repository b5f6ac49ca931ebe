package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Cache    CacheConfig
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"tweet-timeline-cache"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// CacheConfig holds object store and freshness settings.
type CacheConfig struct {
	// StoreType selects the object store backend: memory, redis, sqlite, or mysql.
	StoreType string `envconfig:"CACHE_STORE" default:"memory"`

	// FreshnessWindow is how long a stored timeline is served without
	// consulting upstream again.
	FreshnessWindow time.Duration `envconfig:"CACHE_FRESHNESS_WINDOW" default:"901s"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"tweetcache"`

	SQLitePath string `envconfig:"CACHE_SQLITE_PATH" default:"./data/cache.db"`

	MySQLHost     string `envconfig:"CACHE_MYSQL_HOST" default:"localhost"`
	MySQLPort     int    `envconfig:"CACHE_MYSQL_PORT" default:"3306"`
	MySQLName     string `envconfig:"CACHE_MYSQL_NAME" default:"tweetcache"`
	MySQLUser     string `envconfig:"CACHE_MYSQL_USER" default:"root"`
	MySQLPassword string `envconfig:"CACHE_MYSQL_PASS" default:""`
}

// UpstreamConfig holds settings for the upstream tweet provider.
type UpstreamConfig struct {
	BaseURL     string        `envconfig:"UPSTREAM_BASE_URL" default:"https://api.twitter.com"`
	BearerToken string        `envconfig:"TWITTER_BEARER_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (c *CacheConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// MySQLDSN returns the MySQL data source name for the cache database.
func (c *CacheConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLName)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
