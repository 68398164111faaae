package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/env"
	fbJwt "github.com/annsokol/foodbook/internal/jwt"
	"github.com/annsokol/foodbook/internal/log"
	"github.com/annsokol/foodbook/internal/role"

	mJson "github.com/annsokol/foodbook/internal/json"
)

const testSecret = "test-secret-32-bytes-long-123456"

func testEnv() *env.Env {
	return &env.Env{
		Logger: log.NullLogger(),
		Config: &config.Config{
			Env: config.EnvDev,
			App: config.AppConfig{
				Secret:        testSecret,
				SecretVersion: "1",
			},
		},
	}
}

func createAccessToken(t *testing.T, e *env.Env, userID int64, userRole role.Role) string {
	t.Helper()
	accessToken, err := token.NewAccessToken(fbJwt.JWTParams{
		UserID: fmt.Sprintf("%d", userID),
		Role:   userRole,
	}, e)
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	return accessToken
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var apiErr apiError.Error
	if err := mJson.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return apiErr.Code
}

func TestRequireUser(t *testing.T) {
	e := testEnv()

	tests := []struct {
		name         string
		requiredRole role.Role
		setupRequest func(*http.Request)
		wantStatus   int
		wantCode     apiError.ErrorCode
		wantUserID   int64
	}{
		{
			name:         "valid token in cookie",
			requiredRole: role.RoleUser,
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{
					Name:  token.AccessTokenName(e),
					Value: createAccessToken(t, e, 42, role.RoleUser),
				})
			},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:         "valid token in bearer header",
			requiredRole: role.RoleUser,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+createAccessToken(t, e, 7, role.RoleUser))
			},
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:         "missing token",
			requiredRole: role.RoleUser,
			setupRequest: func(r *http.Request) {},
			wantStatus:   http.StatusUnauthorized,
			wantCode:     apiError.InvalidAccessToken,
		},
		{
			name:         "garbage token",
			requiredRole: role.RoleUser,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
		{
			name:         "user role rejected on admin route",
			requiredRole: role.RoleAdmin,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+createAccessToken(t, e, 9, role.RoleUser))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiError.InsufficientPermissions,
		},
		{
			name:         "admin passes user route",
			requiredRole: role.RoleUser,
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+createAccessToken(t, e, 1, role.RoleAdmin))
			},
			wantStatus: http.StatusOK,
			wantUserID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = token.UserIDFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest("GET", "/api/users/me", nil)
			r = r.WithContext(env.WithCtx(r.Context(), e))
			tt.setupRequest(r)
			w := httptest.NewRecorder()

			RequireUser(tt.requiredRole)(inner).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeErrorCode(t, w.Body.Bytes()); got != tt.wantCode.String() {
					t.Errorf("error code = %q, want %q", got, tt.wantCode)
				}
			}
			if tt.wantUserID != 0 && gotUserID != tt.wantUserID {
				t.Errorf("user id = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestOptionalUser(t *testing.T) {
	e := testEnv()

	tests := []struct {
		name         string
		setupRequest func(*http.Request)
		wantViewer   bool
		wantUserID   int64
	}{
		{
			name:         "anonymous request passes through",
			setupRequest: func(r *http.Request) {},
			wantViewer:   false,
		},
		{
			name: "valid token annotates viewer",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+createAccessToken(t, e, 11, role.RoleUser))
			},
			wantViewer: true,
			wantUserID: 11,
		},
		{
			name: "invalid token treated as anonymous",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer bogus")
			},
			wantViewer: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var viewerID int64
			var viewerOK bool
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				viewerID, viewerOK = token.ViewerFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest("GET", "/api/recipes", nil)
			r = r.WithContext(env.WithCtx(r.Context(), e))
			tt.setupRequest(r)
			w := httptest.NewRecorder()

			OptionalUser(inner).ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if viewerOK != tt.wantViewer {
				t.Errorf("viewer present = %v, want %v", viewerOK, tt.wantViewer)
			}
			if tt.wantViewer && viewerID != tt.wantUserID {
				t.Errorf("viewer id = %d, want %d", viewerID, tt.wantUserID)
			}
		})
	}
}
