// Package services contains the business rules between HTTP handlers
// and the data access layer.
package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/app/repositories"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
	"github.com/nkurunziza/erinda/internal/pkg/auth"
	"github.com/nkurunziza/erinda/internal/pkg/helpers"
)

// AuthService handles registration, login and profile lookups
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user account. The password is hashed before it
// ever reaches the store; username/email uniqueness is enforced by the
// store's schema, so there is no check-then-insert race.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, req.Role)
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		NationalID:  req.NationalID,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		District:    req.District,
		Sector:      req.Sector,
		Cell:        req.Cell,
		Village:     req.Village,
	}

	if req.DateOfBirth != "" {
		dob, err := helpers.ParseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateOfBirth, req.DateOfBirth)
		}
		user.DateOfBirth = &dob
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and mints a bearer token. An unknown
// username and a wrong password produce the same error so usernames
// cannot be enumerated.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("User logged in")
	return token, nil
}

// GetCurrentUser loads the user referenced by a verified token. The
// record may have been removed after issuance; the token outlives it.
func (s *authService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
