package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/converter"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/domain/repository"
)

type CourseUsecase interface {
	ListVisible(ctx context.Context, userID uuid.UUID, role entity.UserRole) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, courseID int) (*dto.CourseResponse, error)
}

type courseUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewCourseUsecase(db *gorm.DB, log *logrus.Logger, courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository) CourseUsecase {
	return &courseUsecase{
		db:             db,
		log:            log,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// ListVisible returns the courses tagged for the caller's role, unioned
// with any course the caller is already enrolled in. An enrollment keeps a
// course visible even after its role tags change. Results are ordered by
// course ID ascending.
func (u *courseUsecase) ListVisible(ctx context.Context, userID uuid.UUID, role entity.UserRole) (*dto.CourseListResponse, error) {
	db := u.db.WithContext(ctx)

	courses, err := u.courseRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list courses: %+v", err)
		return nil, err
	}

	enrollments, err := u.enrollmentRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find enrollments for user %s: %+v", userID, err)
		return nil, err
	}

	enrolled := make(map[int]bool, len(enrollments))
	for _, e := range enrollments {
		enrolled[e.CourseID] = true
	}

	visible := make([]entity.Course, 0, len(courses))
	for _, course := range courses {
		if course.VisibleTo(role) || enrolled[course.ID] {
			visible = append(visible, course)
		}
	}

	return &dto.CourseListResponse{
		Courses: converter.CoursesToResponses(visible),
		Total:   len(visible),
	}, nil
}

func (u *courseUsecase) GetCourse(ctx context.Context, courseID int) (*dto.CourseResponse, error) {
	course, err := u.courseRepo.FindByID(u.db.WithContext(ctx), courseID)
	if err != nil {
		u.log.Warnf("Failed to find course %d: %+v", courseID, err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	return converter.CourseToResponse(course), nil
}
