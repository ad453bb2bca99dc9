package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	domainRepo "github.com/rivergarden/training-backend/internal/domain/repository"
)

type certificateRepository struct{}

func NewCertificateRepository() domainRepo.CertificateRepository {
	return &certificateRepository{}
}

func (r *certificateRepository) Create(db *gorm.DB, certificate *entity.Certificate) error {
	return db.Create(certificate).Error
}

func (r *certificateRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := db.Preload("Course").Preload("User").Where("id = ?", id).First(&certificate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindByUserAndCourse(db *gorm.DB, userID uuid.UUID, courseID int) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&certificate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := db.Preload("Course").Where("user_id = ?", userID).Order("issue_date desc").Find(&certificates).Error
	return certificates, err
}
