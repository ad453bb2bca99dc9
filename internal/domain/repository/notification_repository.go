package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	// FindByUserID returns the user's notifications newest first.
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error)
	FindByIDAndUser(db *gorm.DB, id, userID uuid.UUID) (*entity.Notification, error)
	Update(db *gorm.DB, notification *entity.Notification) error
}
