package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/config"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/jwt"
)

func newAuthService(repo *repository.Repository) *AuthService {
	mgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-at-least-16-chars",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
	return NewAuthService(repo, mgr, nil, zap.NewNop())
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &model.User{
		ID:           "user-1",
		Email:        "andi@bps.go.id",
		NamaLengkap:  "Andi",
		PasswordHash: string(hash),
		Role:         model.RolePegawai,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newMockRepository()
	user := activeUser(t, "rahasia-123")
	repo.User.(*mockUserRepo).getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
		return user, nil
	}

	svc := newAuthService(repo)
	got, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@bps.go.id",
		Password: "rahasia-123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.AccessToken == "" || got.RefreshToken == "" {
		t.Error("missing tokens")
	}
	if got.User.ID != "user-1" {
		t.Errorf("user = %+v", got.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockRepository()
	user := activeUser(t, "rahasia-123")
	repo.User.(*mockUserRepo).getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
		return user, nil
	}

	svc := newAuthService(repo)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@bps.go.id",
		Password: "salah",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newMockRepository()
	svc := newAuthService(repo)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "tidak-ada@bps.go.id",
		Password: "apapun",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newMockRepository()
	user := activeUser(t, "rahasia-123")
	user.IsActive = false
	repo.User.(*mockUserRepo).getByEmailFn = func(ctx context.Context, email string) (*model.User, error) {
		return user, nil
	}

	svc := newAuthService(repo)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@bps.go.id",
		Password: "rahasia-123",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newMockRepository()
	svc := newAuthService(repo)

	access, err := svc.jwtMgr.GenerateAccessToken("user-1", model.RolePegawai)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: access})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	repo := newMockRepository()
	user := activeUser(t, "rahasia-123")
	repo.User.(*mockUserRepo).getByIDFn = func(ctx context.Context, id string) (*model.User, error) {
		return user, nil
	}

	svc := newAuthService(repo)
	refresh, err := svc.jwtMgr.GenerateRefreshToken("user-1", model.RolePegawai, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got.AccessToken == "" {
		t.Error("missing access token")
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	repo := newMockRepository()
	user := activeUser(t, "rahasia-123")
	repo.User.(*mockUserRepo).getByIDFn = func(ctx context.Context, id string) (*model.User, error) {
		return user, nil
	}

	svc := newAuthService(repo)
	err := svc.ChangePassword(context.Background(), "user-1", &dto.ChangePasswordRequest{
		OldPassword: "salah",
		NewPassword: "baru-12345",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
