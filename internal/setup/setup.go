// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annsokol/foodbook/internal/argon2id"
	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	"github.com/annsokol/foodbook/internal/filestore"
	"github.com/annsokol/foodbook/internal/password"
	"github.com/annsokol/foodbook/internal/role"
)

// Database connects to Postgres and applies the schema.
func Database(ctx context.Context, conf *config.Config) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, conf.Database.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// FileStore connects to the object store and ensures the media bucket exists.
func FileStore(ctx context.Context, conf *config.Config) (*filestore.FileStore, error) {
	fs, err := filestore.New(conf.S3)
	if err != nil {
		return nil, fmt.Errorf("creating file store: %w", err)
	}
	if err := fs.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensuring bucket: %w", err)
	}
	return fs, nil
}

// Admin sets up an admin user if one does not exist. Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	adminEmail := env.Config.Admin.Email
	adminPassword := env.Config.Admin.Password
	if adminEmail == "" || adminPassword == "" {
		env.Logger.Info("ADMIN_EMAIL and ADMIN_PASSWORD not setup, skipping admin setup")
		return nil
	}

	// Validate email and password
	if _, err := mail.ParseAddress(adminEmail); err != nil {
		return fmt.Errorf("parsing admin email: %w", err)
	}
	if err := password.ValidatePassword(adminPassword); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	// Check admin count
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.Info("admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(adminPassword, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	// Create admin
	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        adminEmail,
		Username:     env.Config.Admin.Username,
		FirstName:    "admin",
		LastName:     "admin",
		PasswordHash: hashedPassword,
		Role:         role.RoleAdmin.String(),
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.Info("successfully setup admin!")

	return nil
}
