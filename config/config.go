package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	CORS       CORSConfig       `mapstructure:"cors"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	App        AppConfig        `mapstructure:"app"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Throttle   ThrottleConfig   `mapstructure:"throttle"`
	OAuth      OAuthConfig      `mapstructure:"oauth"`
	Mail       MailConfig       `mapstructure:"mail"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"`
	SSLMode     string `mapstructure:"sslmode"`
	MaxConns    int32  `mapstructure:"max_conns"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// DSN builds the postgres connection string for the given scheme ("postgres" or "pgx5").
func (c DBConfig) DSN(scheme string) string {
	return fmt.Sprintf("%s://%s:%s@%s:%d/%s?sslmode=%s",
		scheme, c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"` // Slice of allowed origin strings
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
	CookieName string        `mapstructure:"cookie_name"`
}

// AppConfig holds settings used to build links and serve the client shell
type AppConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	FrontendURL string `mapstructure:"frontend_url"`
	Key         string `mapstructure:"key"` // signs email verification links
	SPAIndex    string `mapstructure:"spa_index"`
}

// StorageConfig holds upload storage settings
type StorageConfig struct {
	BasePath      string `mapstructure:"base_path"`
	PublicURL     string `mapstructure:"public_url"`
	MaxUploadSize string `mapstructure:"max_upload_size"`
	MaxCVPages    int    `mapstructure:"max_cv_pages"`

	maxUploadBytes int64
}

// MaxUploadBytes returns the parsed max_upload_size.
func (c StorageConfig) MaxUploadBytes() int64 {
	return c.maxUploadBytes
}

// PaginationConfig holds list endpoint defaults
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

// ThrottleConfig holds the per-client request budget for /api
type ThrottleConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// OAuthProviderConfig holds credentials for a single social login provider
type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// Enabled reports whether the provider has credentials configured.
func (c OAuthProviderConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// OAuthConfig holds the supported social login providers
type OAuthConfig struct {
	Google   OAuthProviderConfig `mapstructure:"google"`
	LinkedIn OAuthProviderConfig `mapstructure:"linkedin"`
}

// MailConfig holds SMTP settings. An empty host logs mails instead of sending them.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error reading .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")

	setDefaults(v)

	// --- Read Config File (Optional) ---
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix("API") // Example: API_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Host=%s, Redis=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.DB.Host, cfg.Redis.Addr, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "professionals")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	// For production, this SHOULD be overridden by environment variables.
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("jwt.cookie_name", "professionals_session")
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("app.frontend_url", "http://localhost:5173")
	v.SetDefault("app.spa_index", "./public/index.html")
	v.SetDefault("storage.base_path", ".data/uploads")
	v.SetDefault("storage.public_url", "/storage")
	v.SetDefault("storage.max_upload_size", "10MB")
	v.SetDefault("storage.max_cv_pages", 10)
	v.SetDefault("pagination.default_page_size", 15)
	v.SetDefault("pagination.max_page_size", 100)
	v.SetDefault("throttle.requests_per_minute", 60)
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "no-reply@professionals.local")
}

// applyEnvOverrides keeps the short variable names used by the deployment scripts working.
func applyEnvOverrides(cfg *Config) {
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if key := os.Getenv("APP_KEY"); key != "" {
		cfg.App.Key = key
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}
}

func (c *Config) finalize() error {
	if c.JWT.Secret == "" {
		if c.Server.Mode == "release" {
			return fmt.Errorf("jwt.secret is required in release mode")
		}
		log.Println("WARN: jwt.secret not set, using an insecure development secret")
		c.JWT.Secret = "dev-secret-change-me"
	}
	if c.App.Key == "" {
		c.App.Key = c.JWT.Secret
	}

	size, err := units.FromHumanSize(c.Storage.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid storage.max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("storage.max_upload_size must be positive")
	}
	c.Storage.maxUploadBytes = size

	if c.Pagination.DefaultPageSize < 1 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("invalid pagination sizes: default=%d max=%d",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	return nil
}
