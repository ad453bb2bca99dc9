package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/service"
	"github.com/rivergarden/training-backend/internal/testutil"
)

func newSupervisorUsecase(db *gorm.DB) SupervisorUsecase {
	log := testLogger()
	notifier := service.NewNotificationService(log, repository.NewNotificationRepository())
	return NewSupervisorUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewAssignmentRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
		notifier,
	)
}

func assignMember(t *testing.T, db *gorm.DB, supervisorID, memberID interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO assigned_supervisors (supervisor_id, member_id) VALUES (?, ?)",
		supervisorID, memberID,
	).Error)
}

func TestSupervisorTeamIsolation(t *testing.T) {
	db := testutil.DB(t)
	uc := newSupervisorUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleCarer)
	outsider := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	assignMember(t, db, supervisor.ID, member.ID)

	// Operating on someone outside the assigned team is rejected.
	_, err := uc.MemberEnrollments(ctx, supervisor.ID, outsider.ID)
	require.ErrorIs(t, err, ErrNotTeamMember)

	_, err = uc.AssignCourse(ctx, supervisor.ID, &dto.SupervisorAssignCourseRequest{
		MemberID: outsider.ID,
		CourseID: course.ID,
	})
	require.ErrorIs(t, err, ErrNotTeamMember)

	// The assigned member works.
	enrollment, err := uc.AssignCourse(ctx, supervisor.ID, &dto.SupervisorAssignCourseRequest{
		MemberID: member.ID,
		CourseID: course.ID,
	})
	require.NoError(t, err)
	require.Equal(t, member.ID, enrollment.UserID)
	require.Equal(t, supervisor.ID, *enrollment.AssignedBy)

	// A fresh assignment notifies the member.
	var notifications []entity.Notification
	require.NoError(t, db.Where("user_id = ?", member.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationTypeAssignment, notifications[0].Type)
}

func TestSupervisorAssignCourseIdempotent(t *testing.T) {
	db := testutil.DB(t)
	uc := newSupervisorUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleNurse)
	course := createTestCourse(t, db, entity.RoleNurse)

	assignMember(t, db, supervisor.ID, member.ID)

	req := &dto.SupervisorAssignCourseRequest{MemberID: member.ID, CourseID: course.ID}

	first, err := uc.AssignCourse(ctx, supervisor.ID, req)
	require.NoError(t, err)

	second, err := uc.AssignCourse(ctx, supervisor.ID, req)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// Only one assignment notification, from the first call.
	var count int64
	require.NoError(t, db.Model(&entity.Notification{}).
		Where("user_id = ?", member.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRemoveCoursePreservesCertificate(t *testing.T) {
	db := testutil.DB(t)
	supervisorUC := newSupervisorUsecase(db)
	enrollmentUC := newEnrollmentUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	assignMember(t, db, supervisor.ID, member.ID)

	_, err := enrollmentUC.Enroll(ctx, member.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	_, err = enrollmentUC.UpdateProgress(ctx, member.ID, course.ID, 100)
	require.NoError(t, err)

	var enrollment entity.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ? AND course_id = ?", member.ID, course.ID).Error)

	require.NoError(t, supervisorUC.RemoveCourse(ctx, supervisor.ID, &dto.RemoveCourseRequest{
		EnrollmentID: enrollment.ID,
	}))

	// The enrollment is gone but the earned certificate survives.
	var enrollmentCount, certCount int64
	require.NoError(t, db.Model(&entity.Enrollment{}).
		Where("user_id = ? AND course_id = ?", member.ID, course.ID).Count(&enrollmentCount).Error)
	require.NoError(t, db.Model(&entity.Certificate{}).
		Where("user_id = ? AND course_id = ?", member.ID, course.ID).Count(&certCount).Error)
	require.EqualValues(t, 0, enrollmentCount)
	require.EqualValues(t, 1, certCount)
}

func TestSupervisorStats(t *testing.T) {
	db := testutil.DB(t)
	uc := newSupervisorUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	memberA := createTestUser(t, db, entity.RoleCarer)
	memberB := createTestUser(t, db, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	assignMember(t, db, supervisor.ID, memberA.ID)
	assignMember(t, db, supervisor.ID, memberB.ID)

	enrollmentUC := newEnrollmentUsecase(db)
	_, err := enrollmentUC.Enroll(ctx, memberA.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	_, err = enrollmentUC.UpdateProgress(ctx, memberA.ID, course.ID, 100)
	require.NoError(t, err)
	_, err = enrollmentUC.Enroll(ctx, memberB.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	_, err = enrollmentUC.UpdateProgress(ctx, memberB.ID, course.ID, 40)
	require.NoError(t, err)

	stats, err := uc.Stats(ctx, supervisor.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TeamSize)
	require.Equal(t, 1, stats.ActiveCourses)
	require.Equal(t, 2, stats.TotalEnrollments)
	require.Equal(t, 1, stats.CompletedCourses)
	require.Equal(t, 50.0, stats.CompletionRate)
}
