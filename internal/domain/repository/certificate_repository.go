package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *entity.Certificate) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Certificate, error)
	FindByUserAndCourse(db *gorm.DB, userID uuid.UUID, courseID int) (*entity.Certificate, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Certificate, error)
}
