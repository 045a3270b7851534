// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/angelamos/copilothub/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenReuse         = errors.New("token reuse detected")
	ErrEmailExists        = errors.New("email already exists")
)

type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

// UserProvider is implemented by the user service.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(
		ctx context.Context,
		email, passwordHash, name, role string,
	) (*UserInfo, error)
}

// SessionRecorder mirrors login state into the persisted current-session
// record. Implemented by the session manager.
type SessionRecorder interface {
	SignedIn(ctx context.Context, userID, name, email, role string) error
	SignOut(ctx context.Context) error
}

type Service struct {
	repo         *Repository
	jwt          *JWTManager
	userProvider UserProvider
	session      SessionRecorder
	logger       *slog.Logger
}

func NewService(
	repo *Repository,
	jwt *JWTManager,
	userProvider UserProvider,
	session SessionRecorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		jwt:          jwt,
		userProvider: userProvider,
		session:      session,
		logger:       logger,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.createAuthResponse(ctx, user, userAgent, ipAddress, "", nil)
	if err != nil {
		return nil, err
	}

	s.recordSignIn(ctx, user)
	return resp, nil
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(
		ctx,
		req.Email,
		passwordHash,
		req.Name,
		req.Role,
	)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp, err := s.createAuthResponse(ctx, user, userAgent, ipAddress, "", nil)
	if err != nil {
		return nil, err
	}

	s.recordSignIn(ctx, user)
	return resp, nil
}

func (s *Service) Refresh(
	ctx context.Context,
	refreshToken, userAgent, ipAddress string,
) (*AuthResponse, error) {
	tokenHash := core.HashToken(refreshToken)

	storedToken, err := s.repo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("refresh: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	if storedToken.IsUsed {
		//nolint:errcheck // security revocation continues regardless
		_ = s.repo.RevokeByFamilyID(ctx, storedToken.FamilyID)
		return nil, ErrTokenReuse
	}

	if !storedToken.IsValid() {
		if storedToken.IsRevoked() {
			return nil, fmt.Errorf("refresh: %w", core.ErrTokenRevoked)
		}
		return nil, fmt.Errorf("refresh: %w", core.ErrTokenExpired)
	}

	user, err := s.userProvider.GetByID(ctx, storedToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.createAuthResponse(
		ctx,
		user,
		userAgent,
		ipAddress,
		storedToken.FamilyID,
		&storedToken.ID,
	)
}

func (s *Service) Logout(
	ctx context.Context,
	refreshToken, userID string,
) error {
	tokenHash := core.HashToken(refreshToken)

	storedToken, err := s.repo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.recordSignOut(ctx)
			return nil
		}
		return fmt.Errorf("find token: %w", err)
	}

	if storedToken.UserID != userID {
		return fmt.Errorf("logout: %w", core.ErrForbidden)
	}

	if err := s.repo.RevokeByID(ctx, storedToken.ID); err != nil &&
		!errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.recordSignOut(ctx)
	return nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *Service) createAuthResponse(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress, familyID string,
	oldTokenID *string,
) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	refreshData, err := s.jwt.CreateRefreshToken(user.ID, familyID)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	stored, err := s.repo.Create(ctx, RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshData.Hash,
		FamilyID:  refreshData.FamilyID,
		ExpiresAt: refreshData.ExpiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	if oldTokenID != nil {
		//nolint:errcheck // best-effort token chain tracking
		_ = s.repo.MarkAsUsed(ctx, *oldTokenID, stored.ID)
	}

	expiresIn := s.jwt.config.AccessTokenExpire

	return &AuthResponse{
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Tokens: TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshData.Token,
			TokenType:    "Bearer",
			ExpiresIn:    int(expiresIn / time.Second),
			ExpiresAt:    time.Now().Add(expiresIn),
		},
	}, nil
}

func (s *Service) recordSignIn(ctx context.Context, user *UserInfo) {
	if s.session == nil {
		return
	}
	if err := s.session.SignedIn(ctx, user.ID, user.Name, user.Email, user.Role); err != nil {
		s.logger.WarnContext(ctx, "session record not updated",
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordSignOut(ctx context.Context) {
	if s.session == nil {
		return
	}
	if err := s.session.SignOut(ctx); err != nil {
		s.logger.WarnContext(ctx, "session record not cleared",
			slog.String("error", err.Error()),
		)
	}
}
