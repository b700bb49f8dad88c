package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Auth        AuthConfig     `yaml:"auth"`
	Upload      UploadConfig   `yaml:"upload"`
	Logging     LoggingConfig  `yaml:"logging"`
	CORS        CORSConfig     `yaml:"cors"`
	Tracing     TracingConfig  `yaml:"tracing"`
	Environment string         `yaml:"environment"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	URL            string `yaml:"url"`
	MaxConnections int    `yaml:"max_connections"`
	MaxIdle        int    `yaml:"max_idle_connections"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	JWTExpiry time.Duration `yaml:"jwt_expiry"`
	Issuer    string        `yaml:"issuer"`
}

type UploadConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CORSConfig struct {
	AllowedOrigins  []string `yaml:"allowed_origins"`
	AllowAllOrigins bool     `yaml:"allow_all_origins"`
}

type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"`
	ServiceName  string  `yaml:"service_name"`
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	SampleRate   float64 `yaml:"sample_rate"`
}

// Load builds configuration from environment variables. DATABASE_URL and
// JWT_SECRET have no defaults: the process refuses to start without them
// rather than issue unsigned tokens or run against an unknown database.
func Load() (Config, error) {
	env := getEnv("ENVIRONMENT", "development")
	cfg := Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvInt("SERVER_PORT", 8080),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConnections: getEnvInt("DATABASE_MAX_CONNECTIONS", 25),
			MaxIdle:        getEnvInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,
			Issuer:    getEnv("JWT_ISSUER", "eventdesk"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
			AllowAllOrigins: env == "development" || env == "test",
		},
		Tracing: TracingConfig{
			Enabled:      getEnvBool("TRACING_ENABLED", false),
			Exporter:     getEnv("TRACING_EXPORTER", "stdout"),
			ServiceName:  getEnv("TRACING_SERVICE_NAME", "eventdesk-server"),
			OTLPEndpoint: getEnv("TRACING_OTLP_ENDPOINT", "localhost:4317"),
			SampleRate:   1.0,
		},
		Environment: env,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file, seeds unset environment variables from
// it, and then runs Load so env vars always win over file values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	applyFileDefaults(fileCfg)

	return Load()
}

func applyFileDefaults(cfg Config) {
	setenvDefault("SERVER_HOST", cfg.Server.Host)
	setenvDefault("SERVER_PORT", intString(cfg.Server.Port))
	setenvDefault("SERVER_BASE_URL", cfg.Server.BaseURL)
	setenvDefault("DATABASE_URL", cfg.Database.URL)
	setenvDefault("DATABASE_MAX_CONNECTIONS", intString(cfg.Database.MaxConnections))
	setenvDefault("DATABASE_MAX_IDLE_CONNECTIONS", intString(cfg.Database.MaxIdle))
	setenvDefault("JWT_SECRET", cfg.Auth.JWTSecret)
	if cfg.Auth.JWTExpiry > 0 {
		setenvDefault("JWT_EXPIRY_MINUTES", intString(int(cfg.Auth.JWTExpiry/time.Minute)))
	}
	setenvDefault("JWT_ISSUER", cfg.Auth.Issuer)
	setenvDefault("UPLOAD_DIR", cfg.Upload.Dir)
	setenvDefault("LOG_LEVEL", cfg.Logging.Level)
	setenvDefault("LOG_FORMAT", cfg.Logging.Format)
	setenvDefault("CORS_ALLOWED_ORIGINS", strings.Join(cfg.CORS.AllowedOrigins, ","))
	setenvDefault("ENVIRONMENT", cfg.Environment)
}

func (c Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be positive")
	}
	return nil
}

func setenvDefault(key, value string) {
	if value == "" {
		return
	}
	if _, ok := os.LookupEnv(key); !ok {
		_ = os.Setenv(key, value)
	}
}

func intString(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
