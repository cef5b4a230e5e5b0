package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/yukikurage/jetistik-hub/internal/constants"
)

// DefaultSecretKey is used when SECRET_KEY is unset. It is only fit for development.
const DefaultSecretKey = "default-secret-key-change-me"

type Config struct {
	Port    string
	GinMode string

	DatabaseURL string

	SecretKey    string
	TokenMaxAge  time.Duration
	CookieSecure bool

	AdminUsername     string
	AdminPassword     string
	AllowRegistration bool

	UploadDir string
	S3        S3Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DefaultLanguage string

	LogLevel  string
	LogFormat string
}

// S3Config describes the remote object store. An empty Bucket disables it.
type S3Config struct {
	Bucket       string
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	Prefix       string
}

// Enabled reports whether remote uploads are configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Load reads config.toml (optional) and lets environment variables override it.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("port"),
		GinMode:           v.GetString("gin_mode"),
		DatabaseURL:       v.GetString("database_url"),
		SecretKey:         v.GetString("secret_key"),
		TokenMaxAge:       v.GetDuration("token_max_age"),
		CookieSecure:      v.GetBool("cookie_secure"),
		AdminUsername:     v.GetString("admin_username"),
		AdminPassword:     v.GetString("admin_password"),
		AllowRegistration: v.GetBool("allow_registration"),
		UploadDir:         v.GetString("upload_dir"),
		S3: S3Config{
			Bucket:       v.GetString("s3_bucket"),
			Endpoint:     v.GetString("s3_endpoint"),
			Region:       v.GetString("s3_region"),
			AccessKey:    v.GetString("s3_access_key"),
			SecretKey:    v.GetString("s3_secret_key"),
			UsePathStyle: v.GetBool("s3_use_path_style"),
			Prefix:       v.GetString("s3_prefix"),
		},
		RedisAddr:       v.GetString("redis_addr"),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		DefaultLanguage: v.GetString("default_language"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("database_url", "sqlite://jetistik.db")
	v.SetDefault("secret_key", DefaultSecretKey)
	v.SetDefault("token_max_age", constants.MinTokenMaxAge)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "")
	v.SetDefault("allow_registration", true)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("s3_prefix", "jetistik")
	v.SetDefault("redis_db", 0)
	v.SetDefault("default_language", "kk")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Validate checks the values Load cannot default sensibly.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.TokenMaxAge < constants.MinTokenMaxAge || c.TokenMaxAge > constants.MaxTokenMaxAge {
		return fmt.Errorf("TOKEN_MAX_AGE must be between %s and %s, got %s",
			constants.MinTokenMaxAge, constants.MaxTokenMaxAge, c.TokenMaxAge)
	}
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR must not be empty")
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
