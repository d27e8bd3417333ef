// ABOUTME: Configuration management with layered defaults, YAML file and env vars
// ABOUTME: Defines configuration structures for server, cache, storage and pipeline settings

package config

import (
	"errors"
)

// Config holds all application configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Server contains HTTP server configuration
	Server ServerConfig `koanf:"server"`

	// Cache contains cache backend configuration
	Cache CacheConfig `koanf:"cache"`

	// Storage contains durable news store configuration
	Storage StorageConfig `koanf:"storage"`

	// News contains aggregation pipeline configuration
	News NewsConfig `koanf:"news"`

	// Scraper contains crawler configuration
	Scraper ScraperConfig `koanf:"scraper"`

	// Metrics toggles the Prometheus endpoint
	Metrics MetricsConfig `koanf:"metrics"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Addr is the HTTP listen address, e.g. ":8000"
	Addr string `koanf:"addr"`

	// RateLimit is the allowed requests per client per window
	RateLimit int `koanf:"rate_limit"`

	// RateWindowSeconds is the rate limit window
	RateWindowSeconds int `koanf:"rate_window_seconds"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type selects the backend: memory, redis or sqlite
	Type string `koanf:"type"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `koanf:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `koanf:"sqlite"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `koanf:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpirationSeconds is the default TTL for cache entries
	DefaultExpirationSeconds int `koanf:"default_expiration_seconds"`
}

// StorageConfig holds durable store configuration
type StorageConfig struct {
	// Type selects the backend: supabase, postgres or none
	Type string `koanf:"type"`

	// Supabase contains Supabase project configuration
	Supabase SupabaseConfig `koanf:"supabase"`

	// Postgres contains direct-connection configuration
	Postgres PostgresConfig `koanf:"postgres"`
}

// SupabaseConfig holds Supabase REST configuration
type SupabaseConfig struct {
	// URL is the project URL, e.g. "https://xyzcompany.supabase.co"
	URL string `koanf:"url"`

	// Key is the service role API key
	Key string `koanf:"key"`
}

// PostgresConfig holds direct Postgres configuration
type PostgresConfig struct {
	// DSN is the connection string
	DSN string `koanf:"dsn"`
}

// NewsConfig holds aggregation pipeline configuration
type NewsConfig struct {
	// MaxArticles caps one end-to-end aggregation
	MaxArticles int `koanf:"max_articles"`

	// SourceTimeoutSeconds bounds each adapter fetch
	SourceTimeoutSeconds int `koanf:"source_timeout_seconds"`

	// Search configures the structured-search adapter
	Search SearchConfig `koanf:"search"`

	// RSS configures the feed adapter
	RSS RSSConfig `koanf:"rss"`

	// StoreLimit bounds how many pre-scraped rows are read per cycle
	StoreLimit int `koanf:"store_limit"`
}

// SearchConfig holds structured-search adapter configuration
type SearchConfig struct {
	// APIKey authenticates against the search endpoint; empty disables
	// the adapter without error
	APIKey string `koanf:"api_key"`

	// Endpoint overrides the search API base URL
	Endpoint string `koanf:"endpoint"`

	// PageSize bounds results per query
	PageSize int `koanf:"page_size"`

	// Queries overrides the built-in query set
	Queries []string `koanf:"queries"`
}

// RSSConfig holds feed adapter configuration
type RSSConfig struct {
	// ProxyURL is the CORS relay endpoint
	ProxyURL string `koanf:"proxy_url"`

	// CacheTTLSeconds caches raw feed documents when positive;
	// zero keeps the rebuild-per-refresh behavior
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// Feeds overrides the built-in feed list
	Feeds []FeedConfig `koanf:"feeds"`
}

// FeedConfig names one feed endpoint
type FeedConfig struct {
	Name string `koanf:"name"`
	URL  string `koanf:"url"`
}

// ScraperConfig holds crawler configuration
type ScraperConfig struct {
	// MaxPerSite bounds articles per site per run
	MaxPerSite int `koanf:"max_per_site"`

	// Sites overrides the built-in crawl targets
	Sites []SiteConfig `koanf:"sites"`
}

// SiteConfig names one listing page to crawl
type SiteConfig struct {
	Name         string `koanf:"name"`
	URL          string `koanf:"url"`
	LinkSelector string `koanf:"link_selector"`
}

// MetricsConfig toggles metrics collection
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Default returns the configuration used before file and env overrides.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:              ":8000",
			RateLimit:         100,
			RateWindowSeconds: 60,
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			SQLite: SQLiteConfig{
				Path: "cache.db",
			},
			Memory: MemoryConfig{
				DefaultExpirationSeconds: 3600,
			},
		},
		Storage: StorageConfig{
			Type: "none",
		},
		News: NewsConfig{
			MaxArticles:          50,
			SourceTimeoutSeconds: 10,
			Search: SearchConfig{
				PageSize: 20,
			},
			StoreLimit: 20,
		},
		Scraper: ScraperConfig{
			MaxPerSite: 10,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	switch c.Storage.Type {
	case "none", "supabase", "postgres":
	default:
		return errors.New("storage type must be 'supabase', 'postgres' or 'none'")
	}

	if c.Storage.Type == "supabase" && (c.Storage.Supabase.URL == "" || c.Storage.Supabase.Key == "") {
		return errors.New("supabase URL and key are required when using supabase storage")
	}

	if c.Storage.Type == "postgres" && c.Storage.Postgres.DSN == "" {
		return errors.New("postgres DSN is required when using postgres storage")
	}

	if c.News.MaxArticles < 1 {
		return errors.New("news max_articles must be at least 1")
	}

	if c.News.SourceTimeoutSeconds < 1 {
		return errors.New("news source_timeout_seconds must be at least 1")
	}

	return nil
}
