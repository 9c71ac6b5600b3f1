package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Screen   ScreenConfig
	CORS     CORSConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"HTTP_PORT" default:"8080"`
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// UpstreamConfig points at the Eastmoney endpoints. The token is a static
// query parameter the provider expects, not a rotating secret.
type UpstreamConfig struct {
	ListURL        string `envconfig:"EASTMONEY_LIST_URL" default:"https://push2.eastmoney.com/api/qt/clist/get"`
	DetailURL      string `envconfig:"EASTMONEY_DETAIL_URL" default:"https://push2.eastmoney.com/api/qt/stock/get"`
	Token          string `envconfig:"EASTMONEY_TOKEN" default:"bd1d9ddb04089700cf9c27f6f7426281"`
	SegmentFilter  string `envconfig:"EASTMONEY_SEGMENTS" default:"m:0 t:6,m:0 t:80,m:1 t:2,m:1 t:23"`
	TimeoutSeconds int    `envconfig:"EASTMONEY_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the per-request budget.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// ScreenConfig sets the defaults a request can override per call.
type ScreenConfig struct {
	Concurrency int `envconfig:"SCREEN_CONCURRENCY" default:"8"`
	PageSize    int `envconfig:"SCREEN_PAGE_SIZE" default:"1000"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`
}

// RedisConfig stores Redis connection parameters. An empty Addr disables the
// HTTP response cache entirely.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig stores HTTP cache behavior.
type CacheConfig struct {
	TTLSeconds int `envconfig:"CACHE_TTL_SECONDS" default:"30"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load reads .env when present, then builds Config from environment
// variables.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTP.Port)
	}
	if cfg.Upstream.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid EASTMONEY_TIMEOUT_SECONDS %d", cfg.Upstream.TimeoutSeconds)
	}
	return &cfg, nil
}
