// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/annsokol/foodbook/internal/api/error"
	"github.com/annsokol/foodbook/internal/api/requestid"
	"github.com/annsokol/foodbook/internal/api/token"
	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/env"
	fbJwt "github.com/annsokol/foodbook/internal/jwt"
	"github.com/annsokol/foodbook/internal/log"
	"github.com/annsokol/foodbook/internal/role"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			requestID := r.Context().Value(requestIDKey)
			if id, ok := requestID.(uint64); ok {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		isProd := e.Config.Env == config.EnvProd

		// Determine allowed origin based on the incoming Origin header
		var allowedOrigin string
		if isProd {
			allowedOrigin = e.Config.BaseURL
		} else if origin != "" {
			// In dev mode, allow all origins
			allowedOrigin = origin
		}

		if allowedOrigin == "" {
			allowedOrigin = e.Config.BaseURL
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rawAccessToken pulls the access token from the cookie, falling back to an
// Authorization bearer header.
func rawAccessToken(r *http.Request, e *env.Env) (string, bool) {
	if cookie, err := r.Cookie(token.AccessTokenName(e)); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	header := r.Header.Get("Authorization")
	if raw, found := strings.CutPrefix(header, "Bearer "); found && raw != "" {
		return raw, true
	}
	return "", false
}

func validateAccessToken(r *http.Request, e *env.Env, raw string) (*http.Request, error) {
	accessJwt, err := fbJwt.ValidateJWT(raw, e.Config.App.SecretVersion, []byte(e.Config.App.Secret))
	if err != nil {
		return r, err
	}

	sub, err := accessJwt.Claims.GetSubject()
	if err != nil {
		return r, err
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return r, err
	}

	r = r.WithContext(log.AppendCtx(r.Context(), slog.Int64("user-id", userID)))
	r = r.WithContext(token.UserIDWithCtx(r.Context(), userID))
	r = r.WithContext(token.AccessTokenWithCtx(r.Context(), accessJwt))
	return r, nil
}

// RequireUser creates a middleware that validates access tokens and checks
// that the user holds at least the required role.
func RequireUser(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e := env.EnvFromCtx(r.Context())
			requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)

			raw, ok := rawAccessToken(r, e)
			if !ok {
				e.Logger.ErrorContext(r.Context(), "unable to get access token")
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			r, err := validateAccessToken(r, e, raw)
			if errors.Is(err, jwt.ErrTokenExpired) {
				e.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
				return
			} else if err != nil {
				e.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			accessJwt, _ := token.AccessTokenFromCtx(r.Context())
			roleClaim, _ := accessJwt.Claims.(jwt.MapClaims)["role"].(string)
			userRole := role.ToRole(roleClaim)
			if userRole < requiredRole {
				e.Logger.ErrorContext(r.Context(), "user does not have required role",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalUser validates an access token when the request carries one and
// otherwise lets the request through anonymously. Invalid or expired tokens
// are treated as anonymous rather than rejected, so per-viewer annotations
// simply come out false.
func OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())

		raw, ok := rawAccessToken(r, e)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		authed, err := validateAccessToken(r, e, raw)
		if err != nil {
			e.Logger.DebugContext(r.Context(), "ignoring invalid access token on public endpoint",
				slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, authed)
	})
}
