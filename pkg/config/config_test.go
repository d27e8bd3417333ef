package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %q, want :8000", cfg.Server.Addr)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want memory", cfg.Cache.Type)
	}
	if cfg.Storage.Type != "none" {
		t.Errorf("Storage.Type = %q, want none", cfg.Storage.Type)
	}
	if cfg.News.MaxArticles != 50 {
		t.Errorf("News.MaxArticles = %d, want 50", cfg.News.MaxArticles)
	}
	if cfg.News.RSS.CacheTTLSeconds != 0 {
		t.Errorf("News.RSS.CacheTTLSeconds = %d, want 0 (disabled)", cfg.News.RSS.CacheTTLSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.Server.Addr = "" },
			wantErr: true,
		},
		{
			name:    "unknown cache type",
			mutate:  func(c *Config) { c.Cache.Type = "memcached" },
			wantErr: true,
		},
		{
			name: "redis cache without address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
		},
		{
			name: "sqlite cache without path",
			mutate: func(c *Config) {
				c.Cache.Type = "sqlite"
				c.Cache.SQLite.Path = ""
			},
			wantErr: true,
		},
		{
			name:    "unknown storage type",
			mutate:  func(c *Config) { c.Storage.Type = "dynamo" },
			wantErr: true,
		},
		{
			name: "supabase storage without key",
			mutate: func(c *Config) {
				c.Storage.Type = "supabase"
				c.Storage.Supabase.URL = "https://example.supabase.co"
			},
			wantErr: true,
		},
		{
			name: "supabase storage fully configured",
			mutate: func(c *Config) {
				c.Storage.Type = "supabase"
				c.Storage.Supabase.URL = "https://example.supabase.co"
				c.Storage.Supabase.Key = "service-role-key"
			},
			wantErr: false,
		},
		{
			name:    "postgres storage without DSN",
			mutate:  func(c *Config) { c.Storage.Type = "postgres" },
			wantErr: true,
		},
		{
			name:    "zero max articles",
			mutate:  func(c *Config) { c.News.MaxArticles = 0 },
			wantErr: true,
		},
		{
			name:    "zero source timeout",
			mutate:  func(c *Config) { c.News.SourceTimeoutSeconds = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
