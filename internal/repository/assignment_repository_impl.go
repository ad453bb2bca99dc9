package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	domainRepo "github.com/rivergarden/training-backend/internal/domain/repository"
)

type assignmentRepository struct{}

func NewAssignmentRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) Create(db *gorm.DB, assignment *entity.SupervisorAssignment) error {
	return db.Create(assignment).Error
}

func (r *assignmentRepository) FindBySupervisorAndMember(db *gorm.DB, supervisorID, memberID uuid.UUID) (*entity.SupervisorAssignment, error) {
	var assignment entity.SupervisorAssignment
	err := db.Where("supervisor_id = ? AND member_id = ?", supervisorID, memberID).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindBySupervisorID(db *gorm.DB, supervisorID uuid.UUID) ([]entity.SupervisorAssignment, error) {
	var assignments []entity.SupervisorAssignment
	err := db.Where("supervisor_id = ?", supervisorID).Order("created_at asc").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Delete(db *gorm.DB, assignment *entity.SupervisorAssignment) error {
	return db.Delete(assignment).Error
}
