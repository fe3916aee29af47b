package handler

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Team         *TeamHandler
	Project      *ProjectHandler
	Task         *TaskHandler
	Transport    *TransportHandler
	Earnings     *EarningsHandler
	Mitra        *MitraHandler
	Schedule     *ScheduleHandler
	Notification *NotificationHandler
	Settings     *SettingsHandler
	Export       *ExportHandler
	Dashboard    *DashboardHandler
}

// NewHandler wires the handlers against the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Team:         NewTeamHandler(svc.Team),
		Project:      NewProjectHandler(svc.Project),
		Task:         NewTaskHandler(svc.Task),
		Transport:    NewTransportHandler(svc.Transport),
		Earnings:     NewEarningsHandler(svc.Earnings),
		Mitra:        NewMitraHandler(svc.Mitra),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Notification: NewNotificationHandler(svc.Notification),
		Settings:     NewSettingsHandler(svc.Settings),
		Export:       NewExportHandler(svc.Export),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
	}
}
