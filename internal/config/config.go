package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the explicit configuration object handed to the fetch
// layer, the scoring policy and the server at construction time.
// Nothing reads the environment mid-computation; API keys are folded
// in once by Load.
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Cycle     CycleConfig     `yaml:"cycle"`
	Policy    string          `yaml:"policy"` // "extended" (default) or "basic"
	Server    ServerConfig    `yaml:"server"`
	Cache     CacheConfig     `yaml:"cache"`
	Refresh   RefreshConfig   `yaml:"refresh"`
}

type ProvidersConfig struct {
	CoinGecko ProviderConfig `yaml:"coingecko"`
	FearGreed ProviderConfig `yaml:"fear_greed"`
	CoinGlass ProviderConfig `yaml:"coinglass"`
	News      ProviderConfig `yaml:"news"`
}

type ProviderConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKey         string  `yaml:"-"` // env only, never from file
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	RPS            float64 `yaml:"rps"`
	Burst          int     `yaml:"burst"`
}

func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type CycleConfig struct {
	// HalvingDate anchors the cycle bonus window, YYYY-MM-DD.
	// Empty disables the adjustment.
	HalvingDate string `yaml:"halving_date"`
}

// Halving parses the configured anchor date. Zero time when unset.
func (c CycleConfig) Halving() (time.Time, error) {
	if c.HalvingDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", c.HalvingDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid halving_date %q: %w", c.HalvingDate, err)
	}
	return t.UTC(), nil
}

type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

type CacheConfig struct {
	// RedisAddr enables the Redis snapshot cache; empty falls back to
	// the in-process TTL cache.
	RedisAddr  string `yaml:"redis_addr"`
	RedisDB    int    `yaml:"redis_db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RefreshConfig struct {
	// CronSpec drives the background snapshot refresh in server mode.
	CronSpec string `yaml:"cron_spec"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Providers: ProvidersConfig{
			CoinGecko: ProviderConfig{
				BaseURL:        "https://api.coingecko.com/api/v3",
				TimeoutSeconds: 10,
				RPS:            0.5,
				Burst:          2,
			},
			FearGreed: ProviderConfig{
				BaseURL:        "https://api.alternative.me/fng/",
				TimeoutSeconds: 10,
				RPS:            0.5,
				Burst:          2,
			},
			CoinGlass: ProviderConfig{
				BaseURL:        "https://open-api.coinglass.com/public/v2",
				TimeoutSeconds: 10,
				RPS:            0.5,
				Burst:          2,
			},
			News: ProviderConfig{
				BaseURL:        "https://newsapi.org/v2",
				TimeoutSeconds: 10,
				RPS:            0.5,
				Burst:          2,
			},
		},
		Cycle:  CycleConfig{HalvingDate: "2024-04-20"},
		Policy: "extended",
		Server: ServerConfig{
			Host:                "127.0.0.1",
			Port:                8080,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			IdleTimeoutSeconds:  60,
		},
		Cache:   CacheConfig{TTLSeconds: 300},
		Refresh: RefreshConfig{CronSpec: "0 */5 * * * *"},
	}
}

// Load reads the yaml file over the defaults and folds in environment
// secrets. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Providers.CoinGlass.APIKey = os.Getenv("COINGLASS_API_KEY")
	cfg.Providers.News.APIKey = os.Getenv("NEWSAPI_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the rest of the system cannot run
// with.
func (c *Config) Validate() error {
	if c.Policy != "extended" && c.Policy != "basic" {
		return fmt.Errorf("policy must be extended or basic, got %q", c.Policy)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache ttl_seconds must be positive: %d", c.Cache.TTLSeconds)
	}
	if _, err := c.Cycle.Halving(); err != nil {
		return err
	}
	for name, p := range map[string]ProviderConfig{
		"coingecko":  c.Providers.CoinGecko,
		"fear_greed": c.Providers.FearGreed,
		"coinglass":  c.Providers.CoinGlass,
		"news":       c.Providers.News,
	} {
		if p.BaseURL == "" {
			return fmt.Errorf("provider %s: base_url is required", name)
		}
		if p.TimeoutSeconds <= 0 {
			return fmt.Errorf("provider %s: timeout_seconds must be positive", name)
		}
	}
	return nil
}
