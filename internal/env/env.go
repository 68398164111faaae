// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/filestore"
	"github.com/annsokol/foodbook/internal/log"
)

type Env struct {
	Logger    *slog.Logger
	Database  *database.Database
	FileStore filestore.FileStoreInterface
	Config    *config.Config
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
		Config: &config.Config{Env: config.EnvDev},
	}
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx injects an environment into a context.
func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx extracts the environment from a context. A null environment is
// returned when none was injected so callers can log unconditionally.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return Null()
}
