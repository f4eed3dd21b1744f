package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionEnder drops whatever per-user state outlives a token.
type SessionEnder interface {
	EndSession(ctx context.Context) error
}

type AuthServiceImpl struct {
	accounts map[string]auth.Account // keyed by lower-cased email
	jwt.Service
	sessions SessionEnder
}

// NewAuthService hashes the demo credentials once and keeps only the hashes.
func NewAuthService(credentials []auth.DemoCredential, jwtService jwt.Service, sessions SessionEnder) (auth.AuthService, error) {
	accounts := make(map[string]auth.Account, len(credentials))
	for _, c := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", c.User.Email, err)
		}
		accounts[strings.ToLower(c.User.Email)] = auth.Account{User: c.User, PasswordHash: hash}
	}

	return &AuthServiceImpl{
		accounts: accounts,
		Service:  jwtService,
		sessions: sessions,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	account, ok := a.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(account.User)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        account.User,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := a.Service.RevokeToken(token); err != nil {
		return err
	}
	if a.sessions != nil {
		if err := a.sessions.EndSession(ctx); err != nil {
			return fmt.Errorf("failed to end roster session: %w", err)
		}
	}
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	email, _ := claims["email"].(string)
	account, ok := a.accounts[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return account.User, nil
}
