//go:build !integration

package config

import (
	"strings"
	"testing"
	"time"
)

func validBase() *Config {
	return &Config{
		Bot: BotConfig{Token: "123:ABC", ChatID: -1001234567890},
		API: APIConfig{Key: "k"},
	}
}

func TestFinalize(t *testing.T) {
	t.Run("should fill defaults", func(t *testing.T) {
		cfg := validBase()
		if err := finalize(cfg); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if cfg.Bot.Workers != 1 {
			t.Errorf("expected 1 worker by default, but got %d", cfg.Bot.Workers)
		}
		if cfg.Poller.Interval != 10*time.Second || cfg.Poller.FirstDelay != 10*time.Second {
			t.Errorf("expected 10s poller defaults, but got %v/%v", cfg.Poller.Interval, cfg.Poller.FirstDelay)
		}
		if cfg.Poller.FetchLimit != 50 {
			t.Errorf("expected fetch limit 50, but got %d", cfg.Poller.FetchLimit)
		}
		if cfg.Seen.Store != "memory" {
			t.Errorf("expected memory store by default, but got %q", cfg.Seen.Store)
		}
		if cfg.API.BaseURL == "" {
			t.Error("expected a default API base URL")
		}
	})

	t.Run("should fail fast on missing credentials", func(t *testing.T) {
		testCases := []struct {
			name string
			mut  func(*Config)
			want string
		}{
			{"missing token", func(c *Config) { c.Bot.Token = "" }, "bot.token"},
			{"missing chat id", func(c *Config) { c.Bot.ChatID = 0 }, "bot.chat_id"},
			{"missing api key", func(c *Config) { c.API.Key = "" }, "api.key"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := validBase()
				tc.mut(cfg)
				err := finalize(cfg)
				if err == nil {
					t.Fatalf("expected an error for %s, but got nil", tc.name)
				}
				if !strings.Contains(err.Error(), tc.want) {
					t.Errorf("expected error to mention %q, but got: %v", tc.want, err)
				}
			})
		}
	})

	t.Run("should reject unknown seen stores", func(t *testing.T) {
		cfg := validBase()
		cfg.Seen.Store = "postgres"
		if err := finalize(cfg); err == nil {
			t.Fatal("expected an error for unknown store, but got nil")
		}
	})

	t.Run("should require redis url for the redis store", func(t *testing.T) {
		cfg := validBase()
		cfg.Seen.Store = "redis"
		if err := finalize(cfg); err == nil {
			t.Fatal("expected an error for missing redis url, but got nil")
		}
	})

	t.Run("should require ops secrets when enabled", func(t *testing.T) {
		cfg := validBase()
		cfg.Ops.Enabled = true
		if err := finalize(cfg); err == nil {
			t.Fatal("expected an error for missing ops secrets, but got nil")
		}
	})

	t.Run("should apply env overrides", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "456:DEF")
		t.Setenv("CHAT_ID", "-42")
		t.Setenv("API_KEY", "env-key")
		t.Setenv("POLL_INTERVAL", "25")
		t.Setenv("POLL_FIRST", "3s")

		cfg := &Config{}
		if err := finalize(cfg); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if cfg.Bot.Token != "456:DEF" || cfg.Bot.ChatID != -42 || cfg.API.Key != "env-key" {
			t.Errorf("env credentials not applied: %+v", cfg.Bot)
		}
		if cfg.Poller.Interval != 25*time.Second {
			t.Errorf("expected bare seconds to parse, but got %v", cfg.Poller.Interval)
		}
		if cfg.Poller.FirstDelay != 3*time.Second {
			t.Errorf("expected duration form to parse, but got %v", cfg.Poller.FirstDelay)
		}
	})

	t.Run("should reject malformed env values", func(t *testing.T) {
		t.Setenv("CHAT_ID", "not-a-number")
		cfg := validBase()
		if err := finalize(cfg); err == nil {
			t.Fatal("expected an error for malformed CHAT_ID, but got nil")
		}
	})
}
