package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
	"github.com/wavely/wavely-backend/pkg/auth"
	"github.com/wavely/wavely-backend/pkg/jwt"
	"github.com/wavely/wavely-backend/pkg/session"
	"gorm.io/gorm"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginResponse login response
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// TokenPair token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService authentication and profile business logic
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*domain.UserResponse, error)
	Login(ctx context.Context, phone, password string) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID uint) (*domain.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *domain.UpdateProfileRequest) (*domain.UserResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	jwtManager *jwt.Manager
	sessions   *session.Store
}

// NewAuthService creates a new AuthService. sessions may be nil, in which
// case logout token revocation is skipped.
func NewAuthService(userRepo repository.UserRepository, followRepo repository.FollowRepository, jwtManager *jwt.Manager, sessions *session.Store) AuthService {
	return &authService{
		userRepo:   userRepo,
		followRepo: followRepo,
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// Register creates a new account with a derived unique username
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*domain.UserResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)
	fullName := strings.TrimSpace(req.FullName)

	if phone == "" || password == "" || fullName == "" {
		return nil, common.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Phone:        phone,
		PasswordHash: hash,
		FullName:     fullName,
		Username:     deriveUsername(fullName),
	}

	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the conflict is either the phone or the derived username; retry
		// once with a fresh suffix before concluding the phone is taken
		user.Username = deriveUsername(fullName)
		err = s.userRepo.Create(ctx, user)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrPhoneTaken
		}
	}
	if err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// Login authenticates by phone and password. A missing phone and a wrong
// password produce the same error, so accounts cannot be enumerated. A
// banned account is rejected as soon as the phone lookup succeeds.
func (s *authService) Login(ctx context.Context, phone, password string) (*LoginResponse, error) {
	phone = strings.TrimSpace(phone)
	password = strings.TrimSpace(password)
	if phone == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBanned {
		return nil, common.ErrAccountBanned
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetProfile returns a public profile with follower/following aggregates
func (s *authService) GetProfile(ctx context.Context, userID uint) (*domain.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		FullName:       user.FullName,
		AvatarURL:      user.AvatarURL,
		Bio:            user.Bio,
		IsAdmin:        user.IsAdmin,
		IsBanned:       user.IsBanned,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

// UpdateProfile applies only the supplied fields; supplying none is a no-op
func (s *authService) UpdateProfile(ctx context.Context, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, req.UserID, fields); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// RefreshTokens rotates an access/refresh pair
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if s.sessions != nil {
		revoked, err := s.sessions.IsRevoked(ctx, refreshToken)
		if err == nil && revoked {
			return nil, common.ErrInvalidToken
		}
	}

	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	if user.IsBanned {
		return nil, common.ErrAccountBanned
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

// Logout revokes the presented token until its natural expiry
func (s *authService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil {
		return nil
	}
	claims, err := s.jwtManager.VerifyToken(token)
	if err != nil {
		return common.ErrInvalidToken
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.sessions.Revoke(ctx, token, ttl)
}

// deriveUsername lowercases and underscores the full name and appends a
// random hex suffix wide enough to make collisions practically impossible
func deriveUsername(fullName string) string {
	base := strings.ToLower(strings.Join(strings.Fields(fullName), "_"))
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return base + "_" + hex.EncodeToString(buf)
}
