package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"resumeapi/internal/auth"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

var (
	ErrInvalidName    = errors.New("name must be between 2 and 50 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrWeakPassword   = errors.New("password must be at least 8 characters long and contain uppercase, lowercase, and digit")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("incorrect email or password")
	ErrInactiveUser   = errors.New("account is disabled")
	ErrUserNotFound   = errors.New("user not found")
)

var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// AuthService implements credential issuance and verification. The
// analysis endpoints do not depend on it; it is the external collaborator
// surface.
type AuthService interface {
	// Signup registers a new user and returns a token pair.
	Signup(ctx context.Context, req model.SignupRequest) (*model.TokenPair, error)

	// Login verifies credentials and returns a token pair.
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error)

	// Refresh re-issues a token pair from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)

	// CurrentUser resolves a bearer access token to the user profile.
	CurrentUser(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService constructs an AuthService over the given user store and
// token manager.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.TokenPair, error) {
	if len(req.Name) < 2 || len(req.Name) > 50 {
		return nil, ErrInvalidName
	}
	if !emailShape.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !auth.ValidPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.UserRecord{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issuePair(user)
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error) {
	if !emailShape.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !auth.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return s.issuePair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return s.issuePair(user)
}

func (s *authService) CurrentUser(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *authService) issuePair(user *model.UserRecord) (*model.TokenPair, error) {
	access, err := s.tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
	}, nil
}
