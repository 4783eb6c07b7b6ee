package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Topics) != 2 {
		t.Fatalf("expected 2 default topics, got %d", len(cfg.Topics))
	}
	if cfg.Topics[0].Name != "software" || cfg.Topics[1].Name != "hardware" {
		t.Errorf("unexpected topic order: %v", cfg.Topics)
	}
	if cfg.Supplier != "ai" {
		t.Errorf("expected ai supplier by default, got %q", cfg.Supplier)
	}
	if cfg.GetPageSize() != 6 {
		t.Errorf("expected page size 6, got %d", cfg.GetPageSize())
	}
	if cfg.GetItemsPerQuery() != 4 {
		t.Errorf("expected 4 items per query, got %d", cfg.GetItemsPerQuery())
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestPageSizeDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetPageSize(); got != 6 {
		t.Errorf("expected default page size 6, got %d", got)
	}
	cfg.PageSize = 9
	if got := cfg.GetPageSize(); got != 9 {
		t.Errorf("expected page size 9, got %d", got)
	}
}

func TestSplashDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1s", time.Second},
		{"0s", 0},
		{"", 2500 * time.Millisecond},
		{"soon", 2500 * time.Millisecond},
		{"-1s", 2500 * time.Millisecond},
	}
	for _, tt := range tests {
		cfg := &Config{SplashDuration: tt.input}
		if got := cfg.SplashDurationValue(); got != tt.want {
			t.Errorf("SplashDurationValue(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMinRequestInterval(t *testing.T) {
	cfg := &Config{}
	if cfg.MinRequestInterval() != 0 {
		t.Error("expected no limit without ai config")
	}
	cfg.AI = &AIConfig{RequestsPerMinute: 30}
	if got := cfg.MinRequestInterval(); got != 2*time.Second {
		t.Errorf("expected 2s between requests, got %v", got)
	}
}

func TestAIKeyFromEnv(t *testing.T) {
	t.Setenv("GRID7_AI_KEY", "env-key")

	cfg := &Config{AI: &AIConfig{Provider: "gemini"}}
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled via env var")
	}
	if cfg.AIKey() != "env-key" {
		t.Errorf("expected env key, got %q", cfg.AIKey())
	}

	cfg.AI.APIKey = "file-key"
	if cfg.AIKey() != "file-key" {
		t.Errorf("config key should win, got %q", cfg.AIKey())
	}

	cfg.AI = nil
	if cfg.AIEnabled() {
		t.Error("AI should be disabled without an ai block")
	}
}

func TestEnabledSources(t *testing.T) {
	cfg := &Config{
		Sources: []Source{
			{Name: "A", Topic: "software", Enabled: true},
			{Name: "B", Topic: "software", Enabled: false},
			{Name: "C", Topic: "hardware", Enabled: true},
		},
	}
	enabled := cfg.EnabledSources()
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled sources, got %d", len(enabled))
	}
	if enabled[0].Name != "A" || enabled[1].Name != "C" {
		t.Errorf("unexpected enabled sources: %v", enabled)
	}

	sw := cfg.SourcesFor("software")
	if len(sw) != 1 || sw[0].Name != "A" {
		t.Errorf("SourcesFor(software) = %v", sw)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `page_size: 3
supplier: rss
sources:
  - name: Test
    type: rss
    url: https://example.com/feed
    topic: software
    enabled: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetPageSize() != 3 {
		t.Errorf("expected page size 3, got %d", cfg.GetPageSize())
	}
	if cfg.Supplier != "rss" {
		t.Errorf("expected rss supplier, got %q", cfg.Supplier)
	}
	if cfg.Sources[0].Name != "Test" {
		t.Errorf("expected first source name Test, got %s", cfg.Sources[0].Name)
	}
	// Topics omitted from the file come from the embedded defaults
	if len(cfg.Topics) != 2 {
		t.Errorf("expected default topics, got %d", len(cfg.Topics))
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Topics) == 0 {
		t.Error("expected default topics when config doesn't exist")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadRejectsBadSupplier(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("supplier: carrier-pigeon\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected error for unknown supplier")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"missing source name", Config{Sources: []Source{{Type: "rss", URL: "https://example.com"}}}, true},
		{"missing source url", Config{Sources: []Source{{Name: "Test", Type: "rss"}}}, true},
		{"invalid source type", Config{Sources: []Source{{Name: "Test", Type: "json", URL: "https://example.com"}}}, true},
		{"file scheme", Config{Sources: []Source{{Name: "Test", Type: "rss", URL: "file:///etc/passwd"}}}, true},
		{"http source", Config{Sources: []Source{{Name: "Test", Type: "rss", URL: "http://example.com/feed"}}}, false},
		{"unknown provider", Config{AI: &AIConfig{Provider: "bard"}}, true},
		{"topic without prompt", Config{Topics: []Topic{{Name: "x"}}}, true},
		{"topic without name", Config{Topics: []Topic{{Prompt: "x"}}}, true},
		{"bad mail endpoint", Config{Mail: &MailConfig{Endpoint: "ftp://mail"}}, true},
		{"good mail endpoint", Config{Mail: &MailConfig{Endpoint: "https://api.emailjs.com/api/v1.0/email/send"}}, false},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
