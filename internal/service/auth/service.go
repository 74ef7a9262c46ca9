// Package auth authenticates the catalog administrator.
package auth

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/adaptation-catalog/internal/config"
)

// tokenIssuer defines the JWT operations needed by the auth service.
type tokenIssuer interface {
	GenerateAccessToken(subject, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (subject, role string, err error)
}

// Service implements admin login and token validation.
type Service struct {
	log    *slog.Logger
	tokens tokenIssuer
	cfg    config.AuthConfig
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		tokens: tokens,
		cfg:    cfg,
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
