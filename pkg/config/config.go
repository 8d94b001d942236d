package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	} `yaml:"database"`

	Telegram struct {
		Token    string        `yaml:"token"`
		Endpoint string        `yaml:"endpoint"` // Bot API base, override for tests
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"telegram"`

	Twilio struct {
		AccountSID string        `yaml:"account_sid"`
		AuthToken  string        `yaml:"auth_token"`
		FromNumber string        `yaml:"from_number"` // "whatsapp:+E164"
		Endpoint   string        `yaml:"endpoint"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"twilio"`

	Roadmap struct {
		Endpoint string        `yaml:"endpoint"` // learning-path content service base URL
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"roadmap"`

	LLM LLMConfig `yaml:"llm"`

	Schedule struct {
		SendDelay   time.Duration `yaml:"send_delay"`   // pause between users within one tick
		TopicsLimit int           `yaml:"topics_limit"` // max roadmaps listed per user
	} `yaml:"schedule"`

	App struct {
		WebURL string `yaml:"web_url"` // companion web app, used in replies and buttons
	} `yaml:"app"`
}

// LLMConfig holds settings for the answer generator, any
// OpenAI-compatible chat completions endpoint works
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:studyping.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for outbound clients
	if cfg.Telegram.Endpoint == "" {
		cfg.Telegram.Endpoint = "https://api.telegram.org"
	}
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}
	if cfg.Twilio.Endpoint == "" {
		cfg.Twilio.Endpoint = "https://api.twilio.com"
	}
	if cfg.Twilio.Timeout == 0 {
		cfg.Twilio.Timeout = 10 * time.Second
	}
	if cfg.Roadmap.Timeout == 0 {
		cfg.Roadmap.Timeout = 15 * time.Second
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 15 * time.Second
	}

	// set defaults for schedule
	if cfg.Schedule.SendDelay == 0 {
		cfg.Schedule.SendDelay = time.Second
	}
	if cfg.Schedule.TopicsLimit == 0 {
		cfg.Schedule.TopicsLimit = 20
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

var whatsappFromRe = regexp.MustCompile(`^whatsapp:\+\d{6,15}$`)

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	if cfg.Twilio.AccountSID != "" || cfg.Twilio.AuthToken != "" || cfg.Twilio.FromNumber != "" {
		if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" {
			return fmt.Errorf("twilio.account_sid and twilio.auth_token are required together")
		}
		if !whatsappFromRe.MatchString(cfg.Twilio.FromNumber) {
			return fmt.Errorf("twilio.from_number must look like whatsapp:+14155238886")
		}
	}

	if cfg.Roadmap.Endpoint == "" {
		return fmt.Errorf("roadmap.endpoint is required")
	}

	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Schedule.SendDelay < 0 {
		return fmt.Errorf("schedule.send_delay must be non-negative")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// WhatsAppEnabled reports whether the Twilio transport is configured
func (c *Config) WhatsAppEnabled() bool {
	return c.Twilio.AccountSID != ""
}
