package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Validation errors returned by ValidateRelay and ValidateReminders.
var (
	ErrInvalidPort      = errors.New("http_server.port must be between 1 and 65535")
	ErrMissingSpriteBin = errors.New("sprite.bin is required")
	ErrMissingIntakeDir = errors.New("intake.dir is required")
	ErrInvalidBackend   = errors.New("reminders.backend must be one of: file, redis, gtasks")
	ErrInvalidRateLimit = errors.New("intake.rate_limit_per_min must be non-negative")
)

// Reminders backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendGTasks = "gtasks"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Bookmark relay
	Sprite SpriteConfig
	Intake IntakeConfig

	// Reminders bridge
	Reminders RemindersConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SpriteConfig describes the sandbox that runs the bookmark extractor.
type SpriteConfig struct {
	Bin          string
	Org          string
	Sandbox      string
	ExecTimeout  time.Duration
	CatTimeout   time.Duration
	ExtractorURL string // base URL of the extractor as seen from inside the sandbox
	VaultRoot    string // absolute vault path inside the sandbox
	MetaDir      string // metadata sidecar directory, relative to VaultRoot
}

type IntakeConfig struct {
	Dir             string
	RateLimitPerMin int
}

type RemindersConfig struct {
	Backend       string
	DefaultList   string
	AccessTimeout time.Duration
	FetchTimeout  time.Duration

	File        FileStoreConfig
	Redis       RedisStoreConfig
	GoogleTasks GoogleTasksConfig
}

type FileStoreConfig struct {
	Path string
}

type RedisStoreConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type GoogleTasksConfig struct {
	CredentialsPath string
	TokenPath       string
}

// Load loads the relay configuration using Viper and validates the keys the
// relay reads.
// Config file name: config.yaml, searched in ./config, . and /etc/nanoclaw/
func Load() (*Config, error) {
	cfg, err := LoadFile("")
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateRelay(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from path, or from the search path when path
// is empty. Callers validate with ValidateRelay or ValidateReminders.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/nanoclaw/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	// Bookmark relay
	cfg.Sprite.Bin = expandHome(v.GetString("sprite.bin"))
	cfg.Sprite.Org = v.GetString("sprite.org")
	cfg.Sprite.Sandbox = v.GetString("sprite.sandbox")
	cfg.Sprite.ExecTimeout = v.GetDuration("sprite.exec_timeout")
	cfg.Sprite.CatTimeout = v.GetDuration("sprite.cat_timeout")
	cfg.Sprite.ExtractorURL = strings.TrimRight(v.GetString("sprite.extractor_url"), "/")
	cfg.Sprite.VaultRoot = strings.TrimRight(v.GetString("sprite.vault_root"), "/")
	cfg.Sprite.MetaDir = strings.Trim(v.GetString("sprite.meta_dir"), "/")

	cfg.Intake.Dir = expandHome(v.GetString("intake.dir"))
	cfg.Intake.RateLimitPerMin = v.GetInt("intake.rate_limit_per_min")

	// Reminders bridge
	cfg.Reminders.Backend = strings.ToLower(v.GetString("reminders.backend"))
	cfg.Reminders.DefaultList = v.GetString("reminders.default_list")
	cfg.Reminders.AccessTimeout = v.GetDuration("reminders.access_timeout")
	cfg.Reminders.FetchTimeout = v.GetDuration("reminders.fetch_timeout")
	cfg.Reminders.File.Path = expandHome(v.GetString("reminders.file.path"))
	cfg.Reminders.Redis.Addr = v.GetString("reminders.redis.addr")
	cfg.Reminders.Redis.Password = v.GetString("reminders.redis.password")
	cfg.Reminders.Redis.DB = v.GetInt("reminders.redis.db")
	cfg.Reminders.Redis.Prefix = v.GetString("reminders.redis.prefix")
	cfg.Reminders.GoogleTasks.CredentialsPath = expandHome(v.GetString("reminders.google_tasks.credentials_path"))
	cfg.Reminders.GoogleTasks.TokenPath = expandHome(v.GetString("reminders.google_tasks.token_path"))
	if creds := v.GetString("google_tasks_credentials"); creds != "" {
		cfg.Reminders.GoogleTasks.CredentialsPath = expandHome(creds)
	}

	return cfg, nil
}

// ValidateRelay checks the keys read by the bookmark relay.
func (cfg *Config) ValidateRelay() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return ErrInvalidPort
	}
	if cfg.Sprite.Bin == "" {
		return ErrMissingSpriteBin
	}
	if cfg.Intake.Dir == "" {
		return ErrMissingIntakeDir
	}
	if cfg.Intake.RateLimitPerMin < 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

// ValidateReminders checks the keys read by the reminders bridge.
func (cfg *Config) ValidateReminders() error {
	switch cfg.Reminders.Backend {
	case BackendFile, BackendRedis, BackendGTasks:
	default:
		return ErrInvalidBackend
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 9999)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("sprite.bin", "~/.local/bin/sprite")
	v.SetDefault("sprite.org", "joi-ito")
	v.SetDefault("sprite.sandbox", "bookmark-extractor")
	v.SetDefault("sprite.exec_timeout", "120s")
	v.SetDefault("sprite.cat_timeout", "30s")
	v.SetDefault("sprite.extractor_url", "http://localhost:8080")
	v.SetDefault("sprite.vault_root", "/home/sprite/vault")
	v.SetDefault("sprite.meta_dir", "agents/curator/extractions/.meta")

	v.SetDefault("intake.dir", "~/jibrain/intake")
	v.SetDefault("intake.rate_limit_per_min", 60)

	v.SetDefault("reminders.backend", BackendFile)
	v.SetDefault("reminders.default_list", "Inbox")
	v.SetDefault("reminders.access_timeout", "10s")
	v.SetDefault("reminders.fetch_timeout", "30s")
	v.SetDefault("reminders.file.path", "~/.local/share/nanoclaw/reminders.yaml")
	v.SetDefault("reminders.redis.db", 0)
	v.SetDefault("reminders.redis.prefix", "reminders")
	v.SetDefault("reminders.google_tasks.token_path", "token.json")
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// splitList splits a comma separated value since viper does not parse
// arrays from env vars.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
