package setup

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/database"
	"github.com/annsokol/foodbook/internal/env"
	"github.com/annsokol/foodbook/internal/log"
)

func TestAdmin(t *testing.T) {
	validPassword := "correct horse battery staple"

	tests := []struct {
		name      string
		setup     func(*config.Config, *database.MockQuerier)
		wantError bool
	}{
		{
			name: "admin already exists - skip setup",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Email = "admin@example.com"
				c.Admin.Password = validPassword

				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name: "ADMIN_EMAIL not set - skip setup",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Password = validPassword
			},
		},
		{
			name: "ADMIN_PASSWORD not set - skip setup",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Email = "admin@example.com"
			},
		},
		{
			name: "invalid email",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Email = "not-an-address"
				c.Admin.Password = validPassword
			},
			wantError: true,
		},
		{
			name: "weak password",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Email = "admin@example.com"
				c.Admin.Password = "abc"
			},
			wantError: true,
		},
		{
			name: "creates admin",
			setup: func(c *config.Config, mockDB *database.MockQuerier) {
				c.Admin.Email = "admin@example.com"
				c.Admin.Username = "admin"
				c.Admin.Password = validPassword

				mockDB.EXPECT().
					GetAdminCount(gomock.Any()).
					Return(int64(0), nil)
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg database.CreateUserParams) (int64, error) {
						if arg.Email != "admin@example.com" || arg.Username != "admin" {
							t.Errorf("unexpected params: %+v", arg)
						}
						if arg.Role != "admin" {
							t.Errorf("role = %q, want admin", arg.Role)
						}
						if !strings.HasPrefix(arg.PasswordHash, "$argon2id$") {
							t.Errorf("password hash = %q, want argon2id encoding", arg.PasswordHash)
						}
						return 1, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := database.NewMockQuerier(ctrl)
			conf := &config.Config{}
			tt.setup(conf, mockDB)

			e := &env.Env{
				Logger:   log.NullLogger(),
				Database: &database.Database{Querier: mockDB},
				Config:   conf,
			}

			err := Admin(context.Background(), e)
			if tt.wantError && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
