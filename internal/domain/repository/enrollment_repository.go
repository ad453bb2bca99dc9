package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

type EnrollmentRepository interface {
	Create(db *gorm.DB, enrollment *entity.Enrollment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Enrollment, error)
	FindByUserAndCourse(db *gorm.DB, userID uuid.UUID, courseID int) (*entity.Enrollment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Enrollment, error)
	FindByUserIDs(db *gorm.DB, userIDs []uuid.UUID) ([]entity.Enrollment, error)
	Update(db *gorm.DB, enrollment *entity.Enrollment) error
	Delete(db *gorm.DB, enrollment *entity.Enrollment) error
}
