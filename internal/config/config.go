package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/fitplan-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	TextBackendGemini = "gemini"
	TextBackendOllama = "ollama"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"3m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Database configuration, empty URL keeps the plan library in memory
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	MigrationsPath      string        `env:"MIGRATIONS_PATH" envDefault:"file://internal/repository/migrations"`

	// Generative services
	TextBackend   string           `env:"TEXT_BACKEND" envDefault:"gemini"`
	GeminiCfg     GeminiConfig     `envPrefix:"GEMINI_"`
	OllamaCfg     OllamaConfig     `envPrefix:"OLLAMA_"`
	ElevenLabsCfg ElevenLabsConfig `envPrefix:"ELEVENLABS_"`
	AssetsCfg     AssetsConfig     `envPrefix:"ASSETS_"`
	SessionCfg    SessionConfig    `envPrefix:"SESSION_"`
	LimitsCfg     LimitsConfig     `envPrefix:"LIMITS_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Telegram bot configuration (optional)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConfig configures text and image generation.
// APIKey may be empty: its absence is reported per call, not at startup.
type GeminiConfig struct {
	APIKey     string               `env:"API_KEY"`
	TextModel  string               `env:"TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	ImageModel string               `env:"IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	BaseURL    string               `env:"BASE_URL"`
	Timeout    time.Duration        `env:"TIMEOUT" envDefault:"90s"`
	Retry      pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type OllamaConfig struct {
	Host    string               `env:"HOST" envDefault:"http://localhost:11434"`
	Model   string               `env:"MODEL" envDefault:"llama3.1"`
	Timeout time.Duration        `env:"TIMEOUT" envDefault:"5m"`
	Retry   pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type ElevenLabsConfig struct {
	HTTPClientConfig
	APIKey         string               `env:"API_KEY"`
	ModelID        string               `env:"MODEL_ID" envDefault:"eleven_monolingual_v1"`
	DefaultVoiceID string               `env:"DEFAULT_VOICE_ID" envDefault:"21m00Tcm4TlvDq8ikWAM"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"30s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	TLSHandshakeTimeout   time.Duration `env:"TLS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	MaxIdleConns          int           `env:"MAX_IDLE_CONNS" envDefault:"100"`
	MaxIdleConnsPerHost   int           `env:"MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://api.elevenlabs.io"`
}

// AssetsConfig bounds the per-item image fan-out.
type AssetsConfig struct {
	Concurrency int           `env:"CONCURRENCY" envDefault:"4"`
	ItemTimeout time.Duration `env:"ITEM_TIMEOUT" envDefault:"60s"`
}

type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

// LimitsConfig holds input size limits
type LimitsConfig struct {
	MaxAssetItems          int   `env:"MAX_ASSET_ITEMS" envDefault:"24"`
	MaxItemNameLength      int   `env:"MAX_ITEM_NAME_LENGTH" envDefault:"120"`
	MaxSpeechChars         int   `env:"MAX_SPEECH_CHARS" envDefault:"5000"`
	MaxMedicalHistoryChars int   `env:"MAX_MEDICAL_HISTORY_CHARS" envDefault:"2000"`
	MaxBodySize            int64 `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string `env:"BOT_TOKEN"`
	UpdateTimeout      int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST" envDefault:"5"`
	ShutdownTimeout    int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
}

// LoadConfig reads the -env flag and loads the matching configuration.
func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads .env.<environment> when present, then parses the process environment.
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	return parse(environment)
}

func parse(environment string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout))
	}

	if cfg.TextBackend != TextBackendGemini && cfg.TextBackend != TextBackendOllama {
		errors = append(errors, fmt.Sprintf("TEXT_BACKEND must be %q or %q, got %q", TextBackendGemini, TextBackendOllama, cfg.TextBackend))
	}

	if cfg.AssetsCfg.Concurrency < 1 || cfg.AssetsCfg.Concurrency > 32 {
		errors = append(errors, fmt.Sprintf("ASSETS_CONCURRENCY must be between 1 and 32, got %d", cfg.AssetsCfg.Concurrency))
	}

	if cfg.AssetsCfg.ItemTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ASSETS_ITEM_TIMEOUT must be positive, got %s", cfg.AssetsCfg.ItemTimeout))
	}

	if cfg.SessionCfg.TTL < time.Minute {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be at least 1m, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.LimitsCfg.MaxAssetItems < 1 || cfg.LimitsCfg.MaxAssetItems > 100 {
		errors = append(errors, fmt.Sprintf("LIMITS_MAX_ASSET_ITEMS must be between 1 and 100, got %d", cfg.LimitsCfg.MaxAssetItems))
	}

	// Validate Telegram configuration
	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute))
	}

	if cfg.TelegramCfg.RateLimitBurst < 1 || cfg.TelegramCfg.RateLimitBurst > 20 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_BURST must be between 1 and 20, got %d", cfg.TelegramCfg.RateLimitBurst))
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
