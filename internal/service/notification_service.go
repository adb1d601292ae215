package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"
)

type NotificationService struct {
	notifications *repository.NotificationRepository
	identity      UserIdentity
	log           *logger.Logger
}

func NewNotificationService(
	notifications *repository.NotificationRepository,
	identity UserIdentity,
	log *logger.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		identity:      identity,
		log:           log,
	}
}

// NewNotification создает уведомление в статусе new для указанного пользователя
func (s *NotificationService) NewNotification(ctx context.Context, dto NotificationDto) error {
	notification := &model.Notification{
		UserID:      dto.UserID,
		Title:       dto.Title,
		Description: dto.Description,
		Type:        dto.Type,
		Status:      model.NotificationStatusNew,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.log.Error("failed to create notification", "user_id", dto.UserID, "error", err)
		return err
	}
	s.log.Info("notification created", "user_id", dto.UserID, "type", dto.Type)
	return nil
}

// NotificationDisplayed переводит показанное уведомление в статус seen
func (s *NotificationService) NotificationDisplayed(ctx context.Context, notification *model.Notification) error {
	if err := s.notifications.UpdateStatus(ctx, notification.ID, model.NotificationStatusSeen); err != nil {
		s.log.Error("failed to mark notification as seen",
			"notification_id", notification.ID, "error", err)
		return err
	}
	return nil
}

// GetMyNewNotifications возвращает уведомления текущего пользователя
// в статусе new; seen и old исключаются
func (s *NotificationService) GetMyNewNotifications(ctx context.Context) ([]model.Notification, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.notifications.GetNewByUserID(ctx, user.ID)
}
