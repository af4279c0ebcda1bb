package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "flowerdecor/database/repository/admin"
	"flowerdecor/models"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminExists        = errors.New("admin already exists")
	ErrMissingCredentials = errors.New("username and password are required")
)

// TokenIssuer signs and checks admin bearer tokens; *utils.TokenIssuer satisfies it.
type TokenIssuer interface {
	GenerateToken(subject, username string) (string, time.Time, error)
	ExtractIDFromToken(token string) (string, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*models.AdminLoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo   adminRepo.AdminRepository
	Tokens TokenIssuer
	logger *zap.Logger
}

func NewAdminService(repo adminRepo.AdminRepository, tokens TokenIssuer, logger *zap.Logger) *DefaultAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAdminService{Repo: repo, Tokens: tokens, logger: logger}
}
