package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// NotificationService manages in-app notifications.
type NotificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewNotificationService(repo *repository.Repository, logger *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Notify creates one notification. Failures are logged, not returned;
// a missed notification must never fail the business operation.
func (s *NotificationService) Notify(ctx context.Context, userID, title, message, notifType string) {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Warn("create notification failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// NotifyMany fans one message out to several users.
func (s *NotificationService) NotifyMany(ctx context.Context, userIDs []string, title, message, notifType string) {
	if len(userIDs) == 0 {
		return
	}
	notifications := make([]model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		notifications = append(notifications, model.Notification{
			UserID:  id,
			Title:   title,
			Message: message,
			Type:    notifType,
		})
	}
	if err := s.repo.Notification.BatchCreate(ctx, notifications); err != nil {
		s.logger.Warn("batch create notifications failed", zap.Error(err))
	}
}

// List pages through a user's notifications.
func (s *NotificationService) List(ctx context.Context, userID string, req *dto.ListNotificationsRequest) ([]model.Notification, int64, error) {
	return s.repo.Notification.ListByUser(ctx, userID, req.UnreadOnly, req.Offset(), req.PageSize)
}

// CountUnread returns the unread badge count.
func (s *NotificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.repo.Notification.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.repo.Notification.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead clears the user's unread notifications.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.Notification.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
