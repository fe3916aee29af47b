package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/config"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/jwt"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/redis"
)

// Error categories the handlers translate to HTTP statuses. Domain
// errors wrap one of these so handlers only need errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Service aggregates every business service.
type Service struct {
	Auth         *AuthService
	User         *UserService
	Team         *TeamService
	Project      *ProjectService
	Task         *TaskService
	Transport    *TransportService
	Earnings     *EarningsService
	Mitra        *MitraService
	Schedule     *ScheduleService
	Notification *NotificationService
	Settings     *SettingsService
	Export       *ExportService
	Dashboard    *DashboardService
}

// New wires all services against the repository aggregate.
func New(repo *repository.Repository, jwtMgr *jwt.Manager, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) *Service {
	settings := NewSettingsService(repo, &cfg.Finance, logger)
	notification := NewNotificationService(repo, logger)
	earnings := NewEarningsService(repo, logger)
	mitra := NewMitraService(repo, settings, logger)

	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, redisClient, logger),
		User:         NewUserService(repo, logger),
		Team:         NewTeamService(repo, logger),
		Project:      NewProjectService(repo, mitra, notification, logger),
		Task:         NewTaskService(repo, settings, mitra, notification, logger),
		Transport:    NewTransportService(repo, notification, logger),
		Earnings:     earnings,
		Mitra:        mitra,
		Schedule:     NewScheduleService(repo, notification, logger),
		Notification: notification,
		Settings:     settings,
		Export:       NewExportService(repo, earnings, logger),
		Dashboard:    NewDashboardService(repo, logger),
	}
}
