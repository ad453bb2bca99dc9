package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/domain/repository"
)

// NotificationService writes event-driven notifications. Methods take the
// caller's transaction so a notification lands atomically with the state
// change that triggered it.
type NotificationService interface {
	CourseAssigned(tx *gorm.DB, memberID uuid.UUID, courseTitle string, assignedBy string) error
	CertificateIssued(tx *gorm.DB, userID uuid.UUID, courseTitle string) error
	TrainingReminder(tx *gorm.DB, memberID uuid.UUID, from string) error
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) CourseAssigned(tx *gorm.DB, memberID uuid.UUID, courseTitle string, assignedBy string) error {
	return s.create(tx, &entity.Notification{
		UserID:  memberID,
		Title:   "New course assigned",
		Message: fmt.Sprintf("%s assigned you the course %q.", assignedBy, courseTitle),
		Type:    entity.NotificationTypeAssignment,
	})
}

func (s *notificationService) CertificateIssued(tx *gorm.DB, userID uuid.UUID, courseTitle string) error {
	return s.create(tx, &entity.Notification{
		UserID:  userID,
		Title:   "Certificate issued",
		Message: fmt.Sprintf("You completed %q and earned a certificate.", courseTitle),
		Type:    entity.NotificationTypeCertificate,
	})
}

func (s *notificationService) TrainingReminder(tx *gorm.DB, memberID uuid.UUID, from string) error {
	return s.create(tx, &entity.Notification{
		UserID:  memberID,
		Title:   "Training reminder",
		Message: fmt.Sprintf("%s reminds you to complete your outstanding training.", from),
		Type:    entity.NotificationTypeReminder,
	})
}

func (s *notificationService) create(tx *gorm.DB, notification *entity.Notification) error {
	if err := s.notificationRepo.Create(tx, notification); err != nil {
		s.log.Warnf("Failed to create notification: %+v", err)
		return err
	}
	return nil
}
