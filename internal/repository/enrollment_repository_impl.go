package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	domainRepo "github.com/rivergarden/training-backend/internal/domain/repository"
)

type enrollmentRepository struct{}

func NewEnrollmentRepository() domainRepo.EnrollmentRepository {
	return &enrollmentRepository{}
}

func (r *enrollmentRepository) Create(db *gorm.DB, enrollment *entity.Enrollment) error {
	return db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := db.Where("id = ?", id).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByUserAndCourse(db *gorm.DB, userID uuid.UUID, courseID int) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Enrollment, error) {
	var enrollments []entity.Enrollment
	err := db.Preload("Course").Where("user_id = ?", userID).Order("created_at asc").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) FindByUserIDs(db *gorm.DB, userIDs []uuid.UUID) ([]entity.Enrollment, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var enrollments []entity.Enrollment
	err := db.Where("user_id IN ?", userIDs).Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) Update(db *gorm.DB, enrollment *entity.Enrollment) error {
	// Enrollments are loaded with their course preloaded; never write the
	// reference data back.
	return db.Omit(clause.Associations).Save(enrollment).Error
}

func (r *enrollmentRepository) Delete(db *gorm.DB, enrollment *entity.Enrollment) error {
	return db.Delete(enrollment).Error
}
