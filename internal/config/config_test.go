package config

import (
	"errors"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_USER", "foodbook")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE", "foodbook")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_ACCESS_KEY", "minio")
	t.Setenv("S3_SECRET_KEY", "minio123")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if conf.Env != EnvDev {
		t.Errorf("Env = %q, want %q", conf.Env, EnvDev)
	}
	if conf.Port != defaultPort {
		t.Errorf("Port = %d, want %d", conf.Port, defaultPort)
	}
	if conf.App.Secret == "" {
		t.Error("App.Secret not generated in DEV")
	}
	if conf.S3.Bucket != defaultS3Bucket {
		t.Errorf("S3.Bucket = %q, want %q", conf.S3.Bucket, defaultS3Bucket)
	}
	if conf.Admin.Username != "admin" {
		t.Errorf("Admin.Username = %q, want admin", conf.Admin.Username)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{name: "missing database user", omit: "DATABASE_USER"},
		{name: "missing database password", omit: "DATABASE_PASSWORD"},
		{name: "missing database name", omit: "DATABASE"},
		{name: "missing s3 endpoint", omit: "S3_ENDPOINT"},
		{name: "missing s3 access key", omit: "S3_ACCESS_KEY"},
		{name: "missing s3 secret key", omit: "S3_SECRET_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.omit, "")

			_, err := LoadConfig()
			var missing EnvironmentVariableMissingError
			if !errors.As(err, &missing) {
				t.Fatalf("LoadConfig() error = %v, want EnvironmentVariableMissingError", err)
			}
			if missing.Variable != tt.omit {
				t.Errorf("missing variable = %q, want %q", missing.Variable, tt.omit)
			}
		})
	}
}

func TestLoadConfigProdRequiresSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", EnvProd)

	_, err := LoadConfig()
	var missing EnvironmentVariableMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("LoadConfig() error = %v, want EnvironmentVariableMissingError", err)
	}
	if missing.Variable != "APP_SECRET" {
		t.Errorf("missing variable = %q, want APP_SECRET", missing.Variable)
	}

	secret := strings.Repeat("s", 32)
	t.Setenv("APP_SECRET", secret)
	conf, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if conf.App.Secret != secret {
		t.Errorf("App.Secret = %q, want %q", conf.App.Secret, secret)
	}
}

func TestConnString(t *testing.T) {
	d := DatabaseConfig{
		User:     "foodbook",
		Password: "secret",
		Host:     "db",
		Port:     5432,
		Database: "foodbook",
	}
	want := "postgresql://foodbook:secret@db:5432/foodbook"
	if got := d.ConnString(); got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() expected error for invalid PORT")
	}
}
