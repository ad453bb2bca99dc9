package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/service"
	"github.com/rivergarden/training-backend/internal/testutil"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func createTestUser(t *testing.T, db *gorm.DB, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("user-%s@example.com", uuid.New()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, roles ...entity.UserRole) *entity.Course {
	t.Helper()
	course := &entity.Course{
		Title:         fmt.Sprintf("Course %s", uuid.New()),
		Description:   "A test course",
		Category:      entity.CategoryMandatory,
		Difficulty:    entity.DifficultyBeginner,
		Duration:      "2 hours",
		Modules:       3,
		ExpiryDays:    365,
		AssignedRoles: datatypes.NewJSONSlice(roles),
		DeliveryType:  entity.DeliveryVideo,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func newEnrollmentUsecase(db *gorm.DB) EnrollmentUsecase {
	log := testLogger()
	notifier := service.NewNotificationService(log, repository.NewNotificationRepository())
	return NewEnrollmentUsecase(
		db,
		log,
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
		repository.NewCertificateRepository(),
		notifier,
	)
}

func TestEnrollIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)
	ctx := context.Background()

	user := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	first, err := uc.Enroll(ctx, user.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, "not-started", first.Status)
	require.NotNil(t, first.DueDate)

	second, err := uc.Enroll(ctx, user.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)

	user := createTestUser(t, db, entity.RoleNurse)

	_, err := uc.Enroll(context.Background(), user.ID, &dto.EnrollRequest{CourseID: 99999999})
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateProgressIsMonotonic(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)
	ctx := context.Background()

	user := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	_, err := uc.Enroll(ctx, user.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	updated, err := uc.UpdateProgress(ctx, user.ID, course.ID, 60)
	require.NoError(t, err)
	require.Equal(t, 60, updated.Progress)
	require.Equal(t, "in-progress", updated.Status)
	require.NotNil(t, updated.StartedDate)

	// A lower submission never rolls progress back.
	updated, err = uc.UpdateProgress(ctx, user.ID, course.ID, 30)
	require.NoError(t, err)
	require.Equal(t, 60, updated.Progress)
}

func TestReachingFullProgressIssuesCertificateOnce(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)
	ctx := context.Background()

	user := createTestUser(t, db, entity.RoleNurse)
	course := createTestCourse(t, db, entity.RoleNurse)

	_, err := uc.Enroll(ctx, user.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	completed, err := uc.UpdateProgress(ctx, user.ID, course.ID, 100)
	require.NoError(t, err)
	require.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedDate)

	// Completing again must not mint a second certificate.
	_, err = uc.UpdateProgress(ctx, user.ID, course.ID, 100)
	require.NoError(t, err)
	_, err = uc.ForceComplete(ctx, user.ID, course.ID)
	require.NoError(t, err)

	var certs []entity.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&certs).Error)
	require.Len(t, certs, 1)

	// With no enrollment score the certificate score defaults to 100.
	require.Equal(t, 100.0, certs[0].Score)
	require.NotEmpty(t, certs[0].Code)
	require.True(t, certs[0].ExpiryDate.After(time.Now()))
}

func TestUpdateProgressWithoutEnrollment(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)

	user := createTestUser(t, db, entity.RoleDriver)
	course := createTestCourse(t, db, entity.RoleDriver)

	_, err := uc.UpdateProgress(context.Background(), user.ID, course.ID, 50)
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestGetMyEnrollmentsFlipsOverdue(t *testing.T) {
	db := testutil.DB(t)
	uc := newEnrollmentUsecase(db)
	ctx := context.Background()

	user := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	past := time.Now().Add(-24 * time.Hour)
	enrollment := &entity.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
		Status:   entity.StatusInProgress,
		Progress: 40,
		DueDate:  &past,
	}
	require.NoError(t, db.Create(enrollment).Error)

	list, err := uc.GetMyEnrollments(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list.Enrollments, 1)
	require.Equal(t, "overdue", list.Enrollments[0].Status)

	// The flip is persisted, not just rendered.
	var stored entity.Enrollment
	require.NoError(t, db.First(&stored, "id = ?", enrollment.ID).Error)
	require.Equal(t, entity.StatusOverdue, stored.Status)
}
