package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Google    GoogleConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	BaseURL        string
	FrontendURL    string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type UploadConfig struct {
	Backend     string // local, s3, gcs
	Dir         string // local backend only
	S3Bucket    string
	S3Region    string
	S3AccessKey string // static creds; empty falls back to the default chain
	S3SecretKey string
	GCSBucket   string
}

type RateLimitConfig struct {
	Requests      int
	WindowSeconds int
	AuthRequests  int
}

// TeamCode gates self-service registration of team accounts.
type AuthConfig struct {
	TeamCode string
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (j *JWTConfig) Expiry() time.Duration {
	return time.Duration(j.ExpiryHours) * time.Hour
}

func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

func (s *ServerConfig) PublicURL() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", s.Port)
}

func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5011)
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SERVER_BASE_URL", "")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "realty")
	v.SetDefault("DATABASE_PASSWORD", "realty_secret")
	v.SetDefault("DATABASE_NAME", "realty")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("JWT_EXPIRY_HOURS", 720) // 30 days
	v.SetDefault("TEAM_CODE", "")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_CALLBACK_URL", "http://localhost:5011/api/v1/auth/google/callback")
	v.SetDefault("UPLOAD_BACKEND", "local")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_S3_BUCKET", "")
	v.SetDefault("UPLOAD_S3_REGION", "ap-south-1")
	v.SetDefault("UPLOAD_S3_ACCESS_KEY", "")
	v.SetDefault("UPLOAD_S3_SECRET_KEY", "")
	v.SetDefault("UPLOAD_GCS_BUCKET", "")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 900)
	v.SetDefault("RATE_LIMIT_AUTH_REQUESTS", 10)

	// Load from .env file if present
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetInt("SERVER_PORT"),
			Env:            v.GetString("SERVER_ENV"),
			BaseURL:        v.GetString("SERVER_BASE_URL"),
			FrontendURL:    v.GetString("FRONTEND_URL"),
			AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DATABASE_HOST"),
			Port:     v.GetInt("DATABASE_PORT"),
			User:     v.GetString("DATABASE_USER"),
			Password: v.GetString("DATABASE_PASSWORD"),
			Name:     v.GetString("DATABASE_NAME"),
			SSLMode:  v.GetString("DATABASE_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			TeamCode: v.GetString("TEAM_CODE"),
		},
		Google: GoogleConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			CallbackURL:  v.GetString("GOOGLE_CALLBACK_URL"),
		},
		Upload: UploadConfig{
			Backend:     v.GetString("UPLOAD_BACKEND"),
			Dir:         v.GetString("UPLOAD_DIR"),
			S3Bucket:    v.GetString("UPLOAD_S3_BUCKET"),
			S3Region:    v.GetString("UPLOAD_S3_REGION"),
			S3AccessKey: v.GetString("UPLOAD_S3_ACCESS_KEY"),
			S3SecretKey: v.GetString("UPLOAD_S3_SECRET_KEY"),
			GCSBucket:   v.GetString("UPLOAD_GCS_BUCKET"),
		},
		RateLimit: RateLimitConfig{
			Requests:      v.GetInt("RATE_LIMIT_REQUESTS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
			AuthRequests:  v.GetInt("RATE_LIMIT_AUTH_REQUESTS"),
		},
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
