package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/jwt"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/redis"
)

// AuthService handles login, token refresh, logout and password change.
type AuthService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	redis  *redis.Client
	logger *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, redisClient *redis.Client, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, jwtMgr: jwtMgr, redis: redisClient, logger: logger}
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: email atau password salah", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: email atau password salah", ErrUnauthorized)
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.ID, user.Role, req.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", user.Role))

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token tidak valid", ErrUnauthorized)
	}
	if claims.TokenType != "refresh" {
		return nil, fmt.Errorf("%w: bukan refresh token", ErrUnauthorized)
	}

	if s.redis != nil {
		revoked, err := s.redis.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist check failed", zap.Error(err))
		} else if revoked {
			return nil, fmt.Errorf("%w: refresh token sudah dicabut", ErrUnauthorized)
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: akun tidak aktif", ErrUnauthorized)
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout revokes both tokens by blacklisting their IDs until expiry.
func (s *AuthService) Logout(ctx context.Context, accessClaims *jwt.Claims, refreshToken string) error {
	if s.redis == nil {
		return nil
	}

	if err := s.redis.BlacklistToken(ctx, accessClaims.ID, time.Until(accessClaims.ExpiresAt.Time)); err != nil {
		s.logger.Warn("blacklist access token failed", zap.Error(err))
	}

	if refreshToken != "" {
		if claims, err := s.jwtMgr.ParseToken(refreshToken); err == nil && claims.TokenType == "refresh" {
			if err := s.redis.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
				s.logger.Warn("blacklist refresh token failed", zap.Error(err))
			}
		}
	}

	return nil
}

// GetCurrentUser loads the authenticated user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}

// ChangePassword verifies the old password before setting the new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return fmt.Errorf("%w: password lama salah", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}
