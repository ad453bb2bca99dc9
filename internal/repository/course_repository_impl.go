package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	domainRepo "github.com/rivergarden/training-backend/internal/domain/repository"
)

type courseRepository struct{}

func NewCourseRepository() domainRepo.CourseRepository {
	return &courseRepository{}
}

func (r *courseRepository) Create(db *gorm.DB, course *entity.Course) error {
	return db.Create(course).Error
}

func (r *courseRepository) FindByID(db *gorm.DB, id int) (*entity.Course, error) {
	var course entity.Course
	err := db.Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll(db *gorm.DB) ([]entity.Course, error) {
	var courses []entity.Course
	err := db.Order("id asc").Find(&courses).Error
	return courses, err
}
