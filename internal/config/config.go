package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	CORS    CORSConfig
	Extract ExtractConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractConfig holds extraction-pipeline tuning.
type ExtractConfig struct {
	// MaxTextBytes caps the accepted document text size per request.
	MaxTextBytes int `mapstructure:"max_text_bytes"`
}

// Load reads configuration from environment variables with the
// DESPACHO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DESPACHO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "despacho")
	v.SetDefault("db.password", "despacho_secret")
	v.SetDefault("db.name", "despacho_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "despachocomex")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extraction defaults
	v.SetDefault("extract.max_text_bytes", 4<<20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "DESPACHO_SERVER_PORT",
		"server.read_timeout":    "DESPACHO_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "DESPACHO_SERVER_WRITE_TIMEOUT",
		"server.environment":     "DESPACHO_SERVER_ENVIRONMENT",
		"db.host":                "DESPACHO_DB_HOST",
		"db.port":                "DESPACHO_DB_PORT",
		"db.user":                "DESPACHO_DB_USER",
		"db.password":            "DESPACHO_DB_PASSWORD",
		"db.name":                "DESPACHO_DB_NAME",
		"db.sslmode":             "DESPACHO_DB_SSLMODE",
		"db.max_open":            "DESPACHO_DB_MAX_OPEN",
		"db.max_idle":            "DESPACHO_DB_MAX_IDLE",
		"jwt.secret":             "DESPACHO_JWT_SECRET",
		"jwt.access_expiry":      "DESPACHO_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":     "DESPACHO_JWT_REFRESH_EXPIRY",
		"jwt.issuer":             "DESPACHO_JWT_ISSUER",
		"log.level":              "DESPACHO_LOG_LEVEL",
		"log.format":             "DESPACHO_LOG_FORMAT",
		"cors.allowed_origins":   "DESPACHO_CORS_ALLOWED_ORIGINS",
		"extract.max_text_bytes": "DESPACHO_EXTRACT_MAX_TEXT_BYTES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// DESPACHO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DESPACHO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Extract = ExtractConfig{
		MaxTextBytes: v.GetInt("extract.max_text_bytes"),
	}

	return cfg, nil
}
