package repository

import (
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

type CourseRepository interface {
	Create(db *gorm.DB, course *entity.Course) error
	FindByID(db *gorm.DB, id int) (*entity.Course, error)
	// FindAll returns every course ordered by ID ascending so catalog
	// listings stay deterministic.
	FindAll(db *gorm.DB) ([]entity.Course, error)
}
