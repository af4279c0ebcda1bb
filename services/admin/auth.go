package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the password against the stored bcrypt hash and issues a bearer token.
func (s *DefaultAdminService) Login(ctx context.Context, username, password string) (*models.AdminLoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	rec, err := s.Repo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Login: failed to fetch admin", zap.Error(err))
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("Login: password mismatch", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.Tokens.GenerateToken(rec.ID.Hex(), rec.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin token: %w", err)
	}
	s.logger.Info("admin logged in", zap.String("username", rec.Username))
	return &models.AdminLoginResponse{Token: token, ExpiresAt: expires}, nil
}

// Authenticate resolves a bearer token to a still-existing admin account.
func (s *DefaultAdminService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	sub, err := s.Tokens.ExtractIDFromToken(token)
	if err != nil {
		return nil, err
	}
	id, err := repository.ParseID(sub)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// CreateAdmin seeds an account. An existing username yields ErrAdminExists.
func (s *DefaultAdminService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	_, err := s.Repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, ErrAdminExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	created, err := s.Repo.Create(ctx, models.Admin{Username: username, PasswordHash: string(hash)})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrAdminExists
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin created", zap.String("username", username))
	return &created, nil
}
