package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/converter"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	MyNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(db *gorm.DB, log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) MyNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find notifications for user %s: %+v", userID, err)
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

// MarkRead flags a notification as read. Lookup is scoped to the owner so
// one user cannot touch another's notifications.
func (u *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*dto.NotificationResponse, error) {
	db := u.db.WithContext(ctx)

	notification, err := u.notificationRepo.FindByIDAndUser(db, notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", notificationID, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.Read {
		notification.Read = true
		if err := u.notificationRepo.Update(db, notification); err != nil {
			u.log.Warnf("Failed to mark notification %s read: %+v", notificationID, err)
			return nil, err
		}
	}

	return converter.NotificationToResponse(notification), nil
}
