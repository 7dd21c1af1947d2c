package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/auth"
	"github.com/memitrading/memi/internal/pkg/logger"
	"github.com/memitrading/memi/internal/pkg/validation"
)

// AuthService handles admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
	CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error)
	// EnsureAdmin creates the admin unless a user with that email exists; it reports whether one was created
	EnsureAdmin(ctx context.Context, username, email, password string) (bool, error)
	ResetPassword(ctx context.Context, email, password string) error
}

type authServiceImpl struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a token. Unknown email and wrong password
// yield the same ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		logger.Warn().Int64("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// GetCurrentUser re-reads the authenticated user
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func validateCredentials(username, email, password string) error {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(username) == "" {
		verr.Add("username", "is required")
	}
	if !strings.Contains(email, "@") {
		verr.Add("email", "must be a valid email address")
	}
	if len(password) < validation.PasswordMinLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", validation.PasswordMinLength))
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// CreateAdmin hashes the password and stores a new admin user
func (s *authServiceImpl) CreateAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Admin user created")
	return user, nil
}

func (s *authServiceImpl) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return false, err
	}

	if _, err := s.CreateAdmin(ctx, username, email, password); err != nil {
		return false, err
	}
	return true, nil
}

// ResetPassword replaces the password of the user with the given email
func (s *authServiceImpl) ResetPassword(ctx context.Context, email, password string) error {
	if len(password) < validation.PasswordMinLength {
		return apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", validation.PasswordMinLength))
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	logger.Info().Int64("userID", user.ID).Msg("Password reset")
	return nil
}
