package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "SIGNAL_SCANNER_CONFIG"
	logLevelEnv       = "SIGNAL_SCANNER_LOG_LEVEL"
	serverAddrEnv     = "SIGNAL_SCANNER_ADDR"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// KnownBackends lists the backend names the application can build.
var KnownBackends = []string{"duckduckgo", "bing", "google", "googlenews"}

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Server        ServerConfig       `yaml:"server"`
	Fetcher       FetcherConfig      `yaml:"fetcher"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig selects slog level and handler format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	SignalLimit     int      `yaml:"signalLimit"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout"`
}

// FetcherConfig controls backend order, pacing and time bounds.
type FetcherConfig struct {
	Backends       []string          `yaml:"backends"`
	PauseMin       Duration          `yaml:"pauseMin"`
	PauseMax       Duration          `yaml:"pauseMax"`
	RequestTimeout Duration          `yaml:"requestTimeout"`
	Deadline       Duration          `yaml:"deadline"`
	HostInterval   Duration          `yaml:"hostInterval"` // zero disables per-host spacing
	Endpoints      map[string]string `yaml:"endpoints"`    // base URL overrides keyed by backend name
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Enabled reports whether both token and chat are present.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Duration accepts Go duration strings ("750ms", "10s") in YAML.
type Duration time.Duration

// UnmarshalYAML parses a duration string node.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads the YAML file named by SIGNAL_SCANNER_CONFIG (if set) and applies environment overrides.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom reads YAML configuration from path (if present) and applies environment overrides.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg, err := Parse(raw)
			if err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = fileCfg
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Parse decodes a YAML document on top of the defaults.
// Keys present in the document win, including explicit zero values.
func Parse(raw []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if len(c.Fetcher.Backends) == 0 {
		return fmt.Errorf("fetcher: at least one backend is required")
	}
	for _, name := range c.Fetcher.Backends {
		if !isKnownBackend(name) {
			return fmt.Errorf("fetcher: unknown backend %q", name)
		}
	}
	for name := range c.Fetcher.Endpoints {
		if !isKnownBackend(name) {
			return fmt.Errorf("fetcher: endpoint for unknown backend %q", name)
		}
	}
	if c.Fetcher.PauseMin < 0 || c.Fetcher.PauseMax < c.Fetcher.PauseMin {
		return fmt.Errorf("fetcher: invalid pause range %s..%s", c.Fetcher.PauseMin.Std(), c.Fetcher.PauseMax.Std())
	}
	if c.Fetcher.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher: requestTimeout must be positive")
	}
	if c.Fetcher.Deadline <= 0 {
		return fmt.Errorf("fetcher: deadline must be positive")
	}
	if c.Fetcher.HostInterval < 0 {
		return fmt.Errorf("fetcher: hostInterval must not be negative")
	}
	if c.Server.SignalLimit < 0 {
		return fmt.Errorf("server: signalLimit must not be negative")
	}
	return nil
}

func isKnownBackend(name string) bool {
	for _, known := range KnownBackends {
		if known == name {
			return true
		}
	}
	return false
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Addr:            ":5055",
			SignalLimit:     25,
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Fetcher: FetcherConfig{
			Backends:       []string{"duckduckgo", "bing", "google", "googlenews"},
			PauseMin:       Duration(500 * time.Millisecond),
			PauseMax:       Duration(1200 * time.Millisecond),
			RequestTimeout: Duration(10 * time.Second),
			Deadline:       Duration(60 * time.Second),
			HostInterval:   Duration(250 * time.Millisecond),
		},
	}
}
