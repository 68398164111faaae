// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultPort     = 8080
	defaultBaseURL  = "http://localhost:8080"
	defaultDBHost   = "localhost"
	defaultDBPort   = 5432
	defaultLimit    = 6
	appSecretBytes  = 32
	defaultS3Bucket = "foodbook-media"
)

type EnvironmentVariableMissingError struct {
	Variable string
}

func (e EnvironmentVariableMissingError) Error() string {
	return fmt.Sprintf("environment variable %q not set", e.Variable)
}

type AppConfig struct {
	Secret        string `validate:"required,min=32"`
	SecretVersion string `validate:"required"`
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,min=1,max=65535"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	Database string `validate:"required"`
}

type S3Config struct {
	Endpoint  string `validate:"required"`
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`
	Bucket    string `validate:"required"`
	PublicURL string `validate:"required,url"`
	UseSSL    bool
}

type AdminConfig struct {
	Email    string `validate:"omitempty,email"`
	Username string
	Password string
}

type Config struct {
	Env     string `validate:"required,oneof=PROD DEV"`
	Port    int    `validate:"required,min=1,max=65535"`
	BaseURL string `validate:"required,url"`

	App      AppConfig
	Database DatabaseConfig
	S3       S3Config
	Admin    AdminConfig
}

// ConnString builds the Postgres connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnvOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", EnvironmentVariableMissingError{Variable: key}
	}
	return v, nil
}

func generateSecret() (string, error) {
	secret := make([]byte, appSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(secret), nil
}

// LoadConfig builds the configuration from environment variables. In DEV an
// absent APP_SECRET is generated for the lifetime of the process; in PROD it
// is required.
func LoadConfig() (*Config, error) {
	conf := &Config{
		Env:     envOrDefault("ENV", EnvDev),
		BaseURL: envOrDefault("BASE_URL", defaultBaseURL),
	}

	var err error
	if conf.Port, err = intEnvOrDefault("PORT", defaultPort); err != nil {
		return nil, err
	}

	conf.App.Secret = os.Getenv("APP_SECRET")
	if conf.App.Secret == "" {
		if conf.Env == EnvProd {
			return nil, EnvironmentVariableMissingError{Variable: "APP_SECRET"}
		}
		if conf.App.Secret, err = generateSecret(); err != nil {
			return nil, err
		}
	}
	conf.App.SecretVersion = envOrDefault("APP_SECRET_VERSION", "1")

	conf.Database.Host = envOrDefault("DATABASE_HOST", defaultDBHost)
	if conf.Database.Port, err = intEnvOrDefault("DATABASE_PORT", defaultDBPort); err != nil {
		return nil, err
	}
	if conf.Database.User, err = requireEnv("DATABASE_USER"); err != nil {
		return nil, err
	}
	if conf.Database.Password, err = requireEnv("DATABASE_PASSWORD"); err != nil {
		return nil, err
	}
	if conf.Database.Database, err = requireEnv("DATABASE"); err != nil {
		return nil, err
	}

	if conf.S3.Endpoint, err = requireEnv("S3_ENDPOINT"); err != nil {
		return nil, err
	}
	if conf.S3.AccessKey, err = requireEnv("S3_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if conf.S3.SecretKey, err = requireEnv("S3_SECRET_KEY"); err != nil {
		return nil, err
	}
	conf.S3.Bucket = envOrDefault("S3_BUCKET", defaultS3Bucket)
	conf.S3.PublicURL = envOrDefault("S3_PUBLIC_URL", conf.BaseURL+"/media")
	conf.S3.UseSSL = os.Getenv("S3_USE_SSL") == "true"

	conf.Admin.Email = os.Getenv("ADMIN_EMAIL")
	conf.Admin.Username = envOrDefault("ADMIN_USERNAME", "admin")
	conf.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(conf); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return conf, nil
}
