package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// UserService handles admin-side user management.
type UserService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewUserService(repo *repository.Repository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a new account. Emails are unique.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	existing, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email sudah terdaftar", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		NamaLengkap:  req.NamaLengkap,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// GetByID looks a user up.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}

// List pages through users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, req *dto.ListUsersRequest) ([]model.User, int64, error) {
	return s.repo.User.List(ctx, req.Role, req.Offset(), req.PageSize)
}

// ListPegawai returns the active pegawai for assignment pickers.
func (s *UserService) ListPegawai(ctx context.Context) ([]model.User, error) {
	return s.repo.User.ListByRole(ctx, model.RolePegawai)
}

// Update applies the provided fields; deactivation keeps the row and
// its history intact.
func (s *UserService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if req.NamaLengkap != nil {
		user.NamaLengkap = *req.NamaLengkap
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
