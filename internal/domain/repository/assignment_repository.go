package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

type AssignmentRepository interface {
	Create(db *gorm.DB, assignment *entity.SupervisorAssignment) error
	FindBySupervisorAndMember(db *gorm.DB, supervisorID, memberID uuid.UUID) (*entity.SupervisorAssignment, error)
	FindBySupervisorID(db *gorm.DB, supervisorID uuid.UUID) ([]entity.SupervisorAssignment, error)
	Delete(db *gorm.DB, assignment *entity.SupervisorAssignment) error
}
