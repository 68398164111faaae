// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/annsokol/foodbook/internal/config"
	"github.com/annsokol/foodbook/internal/env"
	"github.com/annsokol/foodbook/internal/jwt"
)

const (
	// AccessTokenLifetime is the cookie lifetime in seconds.
	AccessTokenLifetime = 60 * 60
)

var ErrNoUserID = errors.New("no user id in context")

type userIDKeyType struct{}

var userIDKey userIDKeyType

type accessTokenKeyType struct{}

var accessTokenKey accessTokenKeyType

func AccessTokenName(e *env.Env) string {
	if e.Config.Env == config.EnvProd {
		return "__Host-Http-access"
	}
	return "access"
}

// NewAccessToken mints a signed access token for the user.
func NewAccessToken(params jwt.JWTParams, e *env.Env) (string, error) {
	secret := e.Config.App.Secret
	if secret == "" {
		return "", errors.New("app secret not configured")
	}
	token, err := jwt.GenerateJWT(params, []byte(secret), e.Config.App.SecretVersion)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

func NewAccessTokenCookie(token string, e *env.Env) *http.Cookie {
	cookie := &http.Cookie{
		Name:     AccessTokenName(e),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   AccessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}

	if e.Config.Env == config.EnvProd {
		cookie.Secure = true
	}

	return cookie
}

// NewExpiredAccessTokenCookie clears the access token on logout.
func NewExpiredAccessTokenCookie(e *env.Env) *http.Cookie {
	cookie := NewAccessTokenCookie("", e)
	cookie.MaxAge = -1
	return cookie
}

// UserIDWithCtx injects the authenticated user's id into a context.
func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromCtx extracts the authenticated user's id from a context.
func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok {
		return v, nil
	}
	return 0, ErrNoUserID
}

// ViewerFromCtx returns the user id and true for an authenticated request,
// or 0 and false for an anonymous one.
func ViewerFromCtx(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// AccessTokenWithCtx injects the validated access token into a context.
func AccessTokenWithCtx(ctx context.Context, token *gojwt.Token) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessTokenFromCtx extracts the validated access token from a context.
func AccessTokenFromCtx(ctx context.Context) (*gojwt.Token, bool) {
	t, ok := ctx.Value(accessTokenKey).(*gojwt.Token)
	return t, ok
}
