package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Mindlyst specifics
	HF       HFConfig
	Google   GoogleConfig
	Session  SessionConfig
	Batch    BatchConfig
	Postgres PostgresConfig

	RateLimit RateLimitConfig
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

// HFConfig configures the Hugging Face inference router client.
type HFConfig struct {
	APIURL        string
	AccessToken   string
	Model         string
	MinTextLength int
}

// GoogleConfig holds the OAuth client used for sign-in and Tasks access.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type SessionConfig struct {
	TTL          time.Duration
	MaxSessions  int
	CookieName   string
	CookieSecure bool
}

// BatchConfig tunes the in-memory batch coordinator.
type BatchConfig struct {
	TTL        time.Duration
	MaxBatches int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RateLimitConfig struct {
	ExtractPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Hugging Face inference
	cfg.HF.APIURL = viper.GetString("hf.api_url")
	cfg.HF.AccessToken = viper.GetString("hf.access_token")
	cfg.HF.Model = viper.GetString("hf.model")
	cfg.HF.MinTextLength = viper.GetInt("hf.min_text_length")
	if hfToken := viper.GetString("hf_access_token"); hfToken != "" {
		cfg.HF.AccessToken = hfToken
	}

	// Google OAuth
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	// Sessions & batch coordinator
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	cfg.Batch.TTL = viper.GetDuration("batch.ttl")
	cfg.Batch.MaxBatches = viper.GetInt("batch.max_batches")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Rate limiting
	cfg.RateLimit.ExtractPerMin = viper.GetInt("rate_limit.extract_per_min")

	// Validate required credentials
	if cfg.HF.AccessToken == "" {
		return nil, fmt.Errorf("hf.access_token is required - set HF_ACCESS_TOKEN or add it to config.yaml")
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return nil, fmt.Errorf("google.client_id and google.client_secret are required for sign-in")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("hf.api_url", "https://router.huggingface.co/v1/chat/completions")
	viper.SetDefault("hf.model", "meta-llama/Llama-3.2-3B-Instruct")
	viper.SetDefault("hf.min_text_length", 50)

	viper.SetDefault("google.redirect_url", "http://localhost:8080/api/v1/auth/google/callback")

	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cookie_name", "mindlyst_session")
	viper.SetDefault("session.cookie_secure", false)
	viper.SetDefault("batch.ttl", "24h")
	viper.SetDefault("batch.max_batches", 10000)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "mindlyst")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("rate_limit.extract_per_min", 30)
}
