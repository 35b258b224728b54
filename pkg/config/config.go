package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Backend struct {
		BaseURL      string        `yaml:"base_url"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
	} `yaml:"backend"`
	MarketData struct {
		BaseURL      string        `yaml:"base_url"`
		APIKey       string        `yaml:"api_key"`
		WindowDays   int           `yaml:"window_days"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
	} `yaml:"market_data"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Queue struct {
		Workers       int           `yaml:"workers"`
		KeyPrefix     string        `yaml:"key_prefix"`
		RetryLimit    int           `yaml:"retry_limit"`
		RetryDelay    time.Duration `yaml:"retry_delay"`
		ResultTimeout time.Duration `yaml:"result_timeout"`
		ResultTTL     time.Duration `yaml:"result_ttl"`
	} `yaml:"queue"`
	Scoring struct {
		FallbackPrice float64 `yaml:"fallback_price"`
	} `yaml:"scoring"`
	Events struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"events"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// BACKEND_URL and ANALYSIS_PORT are the deployment contract inherited from
// the platform; the rest follow the same convention.
func LoadWithEnv(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("ANALYSIS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse ANALYSIS_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("MARKET_API_KEY"); v != "" {
		c.MarketData.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("EVENTS_TOPIC"); v != "" {
		c.Events.Topic = v
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Backend.FetchTimeout == 0 {
		c.Backend.FetchTimeout = 5 * time.Second
	}
	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.MarketData.WindowDays == 0 {
		c.MarketData.WindowDays = 365
	}
	if c.MarketData.FetchTimeout == 0 {
		c.MarketData.FetchTimeout = 10 * time.Second
	}
	if c.Queue.Workers == 0 {
		c.Queue.Workers = 2
	}
	if c.Queue.KeyPrefix == "" {
		c.Queue.KeyPrefix = "tokenpulse:queue"
	}
	if c.Queue.RetryDelay == 0 {
		c.Queue.RetryDelay = 5 * time.Second
	}
	if c.Queue.ResultTimeout == 0 {
		c.Queue.ResultTimeout = 10 * time.Second
	}
	if c.Queue.ResultTTL == 0 {
		c.Queue.ResultTTL = 60 * time.Second
	}
	if c.Scoring.FallbackPrice == 0 {
		c.Scoring.FallbackPrice = 1000.0
	}
	if c.Events.Enabled {
		if c.Events.RequiredAcks == 0 {
			c.Events.RequiredAcks = -1
		}
		if c.Events.Compression == "" {
			c.Events.Compression = "gzip"
		}
		if c.Events.Producer.MaxAttempts == 0 {
			c.Events.Producer.MaxAttempts = 3
		}
		if c.Events.Producer.BatchSize == 0 {
			c.Events.Producer.BatchSize = 100
		}
		if c.Events.Producer.BatchBytes == 0 {
			c.Events.Producer.BatchBytes = 1048576
		}
		if c.Events.Producer.Linger == 0 {
			c.Events.Producer.Linger = time.Second
		}
		if c.Events.Producer.WriteTimeout == 0 {
			c.Events.Producer.WriteTimeout = 10 * time.Second
		}
		if c.Events.Producer.ReadTimeout == 0 {
			c.Events.Producer.ReadTimeout = 10 * time.Second
		}
	}
}

// Validate checks if the configuration is valid. The market-data API key is
// intentionally not required: a missing key degrades to an empty price
// series at runtime instead of refusing to boot.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if c.Scoring.FallbackPrice <= 0 {
		return fmt.Errorf("scoring.fallback_price must be positive, got %v", c.Scoring.FallbackPrice)
	}
	if c.Events.Enabled {
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("events.brokers cannot be empty when events are enabled")
		}
		if c.Events.Topic == "" {
			return fmt.Errorf("events.topic is required when events are enabled")
		}
	}
	return nil
}
