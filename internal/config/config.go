// File: internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token   string      `yaml:"token"`
	ChatID  int64       `yaml:"chat_id"` // the one group the relay serves
	Workers int         `yaml:"workers"` // polling workers; 1 keeps handling sequential
	Links   LinksConfig `yaml:"links"`
}

// LinksConfig holds the URLs behind the inline buttons attached to forwarded
// records. Buttons are omitted when both are empty.
type LinksConfig struct {
	Bot   string `yaml:"bot"`
	Group string `yaml:"group"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Key     string        `yaml:"key"`
	Timeout time.Duration `yaml:"timeout"`
}

type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`
	FirstDelay  time.Duration `yaml:"first_delay"` // delay before the first tick; never fires immediately
	FetchLimit  int           `yaml:"fetch_limit"`
	TickTimeout time.Duration `yaml:"tick_timeout"`
}

type SeenConfig struct {
	Store string      `yaml:"store"` // memory | redis | bolt
	Redis RedisConfig `yaml:"redis"`
	Bolt  BoltConfig  `yaml:"bolt"`
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BoltConfig struct {
	Path string `yaml:"path"`
}

type OpsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Port          int    `yaml:"port"`
	JWTSecret     string `yaml:"jwt_secret"`
	AdminPassword string `yaml:"admin_password"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type Config struct {
	Bot    BotConfig    `yaml:"bot"`
	API    APIConfig    `yaml:"api"`
	Poller PollerConfig `yaml:"poller"`
	Seen   SeenConfig   `yaml:"seen"`
	Ops    OpsConfig    `yaml:"ops"`
	Log    LogConfig    `yaml:"log"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig() (*Config, error) {
	var configPath string = ""
	var dev bool
	flag.StringVar(&configPath, "config", "config.yaml", "path to config yaml")
	flag.BoolVar(&dev, "dev", false, "development mode")
	flag.Parse()

	var cfg Config
	b, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// env-only deployments run without a file
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := finalize(&cfg); err != nil {
		return nil, err
	}
	cfg.Runtime.Dev = dev
	return &cfg, nil
}

// finalize overlays environment variables, fills defaults, and validates.
func finalize(cfg *Config) error {
	if err := applyEnv(cfg); err != nil {
		return err
	}

	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://otprevenue.com/api/v1"
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.Poller.Interval <= 0 {
		cfg.Poller.Interval = 10 * time.Second
	}
	if cfg.Poller.FirstDelay <= 0 {
		cfg.Poller.FirstDelay = 10 * time.Second
	}
	if cfg.Poller.FetchLimit <= 0 {
		cfg.Poller.FetchLimit = 50
	}
	if cfg.Poller.TickTimeout <= 0 {
		cfg.Poller.TickTimeout = 30 * time.Second
	}
	if cfg.Seen.Store == "" {
		cfg.Seen.Store = "memory"
	}
	if cfg.Seen.Bolt.Path == "" {
		cfg.Seen.Bolt.Path = "seen.db"
	}
	if cfg.Ops.Port <= 0 {
		cfg.Ops.Port = 8080
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return errors.New("bot.token is required")
	}
	if cfg.Bot.ChatID == 0 {
		return errors.New("bot.chat_id is required")
	}
	if cfg.API.Key == "" {
		return errors.New("api.key is required")
	}
	switch cfg.Seen.Store {
	case "memory", "bolt":
	case "redis":
		if cfg.Seen.Redis.URL == "" {
			return errors.New("seen.redis.url is required for the redis store")
		}
	default:
		return fmt.Errorf("seen.store must be memory, redis or bolt, got %q", cfg.Seen.Store)
	}
	if cfg.Ops.Enabled {
		if cfg.Ops.JWTSecret == "" {
			return errors.New("ops.jwt_secret is required when ops is enabled")
		}
		if cfg.Ops.AdminPassword == "" {
			return errors.New("ops.admin_password is required when ops is enabled")
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse CHAT_ID: %w", err)
		}
		cfg.Bot.ChatID = id
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("parse POLL_INTERVAL: %w", err)
		}
		cfg.Poller.Interval = d
	}
	if v := os.Getenv("POLL_FIRST"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("parse POLL_FIRST: %w", err)
		}
		cfg.Poller.FirstDelay = d
	}
	return nil
}

// parseSeconds accepts a Go duration ("15s") or bare seconds ("15").
func parseSeconds(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("want a duration or whole seconds, got %q", v)
	}
	return time.Duration(n) * time.Second, nil
}
