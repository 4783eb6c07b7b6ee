package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Source struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	URL     string  `yaml:"url"`
	Topic   string  `yaml:"topic"`
	Weight  float64 `yaml:"weight,omitempty"`
	Enabled bool    `yaml:"enabled"`
}

// Topic is one live sub-query. Prompt is sent to the AI supplier; Name
// selects RSS sources.
type Topic struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
}

type AIConfig struct {
	Provider          string `yaml:"provider"` // "gemini", "claude" or "openai"
	APIKey            string `yaml:"api_key"`
	Model             string `yaml:"model"`
	RequestsPerMinute int    `yaml:"requests_per_minute,omitempty"`
}

type MailConfig struct {
	Endpoint   string `yaml:"endpoint"`
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
	ReplyTo    string `yaml:"reply_to"`
}

type Config struct {
	PageSize       int         `yaml:"page_size,omitempty"`
	ItemsPerQuery  int         `yaml:"items_per_query,omitempty"`
	SplashDuration string      `yaml:"splash_duration,omitempty"`
	LogLevel       string      `yaml:"log_level,omitempty"`
	Supplier       string      `yaml:"supplier"`
	Topics         []Topic     `yaml:"topics"`
	AI             *AIConfig   `yaml:"ai,omitempty"`
	Mail           *MailConfig `yaml:"mail,omitempty"`
	Sources        []Source    `yaml:"sources"`
}

// AIEnabled returns true if AI is configured with a valid API key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("GRID7_AI_KEY")
}

// GetPageSize returns the pagination step, defaulting to 6.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return 6
	}
	return c.PageSize
}

// GetItemsPerQuery returns how many items each live sub-query asks for,
// defaulting to 4.
func (c *Config) GetItemsPerQuery() int {
	if c.ItemsPerQuery <= 0 {
		return 4
	}
	return c.ItemsPerQuery
}

func (c *Config) SplashDurationValue() time.Duration {
	d, err := time.ParseDuration(c.SplashDuration)
	if err != nil || d < 0 {
		return 2500 * time.Millisecond
	}
	return d
}

// MinRequestInterval converts requests_per_minute into a spacing between
// outbound AI calls. Zero means unlimited.
func (c *Config) MinRequestInterval() time.Duration {
	if c.AI == nil || c.AI.RequestsPerMinute <= 0 {
		return 0
	}
	return time.Minute / time.Duration(c.AI.RequestsPerMinute)
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// SourcesFor returns the enabled sources feeding the named topic.
func (c *Config) SourcesFor(topic string) []Source {
	var out []Source
	for _, s := range c.EnabledSources() {
		if s.Topic == topic {
			out = append(out, s)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "grid7", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "grid7", "grid7.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: fall back to embedded defaults if the copy can't be written
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = defaults.Topics
	}
	if cfg.Supplier == "" {
		cfg.Supplier = defaults.Supplier
	}
	if cfg.AI == nil {
		cfg.AI = defaults.AI
	}
	if cfg.Mail == nil {
		cfg.Mail = defaults.Mail
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Supplier {
	case "", "ai", "rss", "none":
	default:
		return fmt.Errorf("unknown supplier %q (valid: ai, rss, none)", cfg.Supplier)
	}

	if cfg.AI != nil && cfg.AI.Provider != "" {
		switch cfg.AI.Provider {
		case "gemini", "claude", "openai":
		default:
			return fmt.Errorf("unknown AI provider %q (valid: gemini, claude, openai)", cfg.AI.Provider)
		}
	}

	for i, t := range cfg.Topics {
		if t.Name == "" {
			return fmt.Errorf("topic %d: name is required", i)
		}
		if t.Prompt == "" {
			return fmt.Errorf("topic %q: prompt is required", t.Name)
		}
	}

	validTypes := map[string]bool{"rss": true, "atom": true}
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
		if s.Weight < 0 || s.Weight > 1 {
			return fmt.Errorf("source %q: weight must be between 0 and 1, got %v", s.Name, s.Weight)
		}
		if !validTypes[s.Type] {
			return fmt.Errorf("source %q: unknown type %q (valid: rss, atom)", s.Name, s.Type)
		}
	}

	if cfg.Mail != nil && cfg.Mail.Endpoint != "" {
		u, err := url.Parse(cfg.Mail.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("mail: endpoint must be an http or https url, got %q", cfg.Mail.Endpoint)
		}
	}
	return nil
}
