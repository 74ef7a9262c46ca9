package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/adaptation-catalog/internal/auth"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// LoginInput holds admin credentials.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Login verifies the admin credentials against the configured bcrypt hash
// and issues an access token. Wrong credentials yield domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1

	// Always compared; timing must not reveal whether the username matched.
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(input.Password))
	if hashErr != nil && !errors.Is(hashErr, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, fmt.Errorf("compare password: %w", hashErr)
	}

	if !userOK || hashErr != nil {
		s.log.WarnContext(ctx, "admin login failed", slog.String("username", username))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.tokens.GenerateAccessToken(username, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("username", username))

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires,
	}, nil
}

// ValidateToken returns the subject of a valid admin token.
// Tokens without the admin role yield domain.ErrForbidden.
func (s *Service) ValidateToken(token string) (string, error) {
	subject, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if role != auth.RoleAdmin {
		return "", domain.ErrForbidden
	}
	return subject, nil
}
