package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/service"
	"github.com/rivergarden/training-backend/internal/testutil"
)

func newTeamUsecase(db *gorm.DB) TeamUsecase {
	log := testLogger()
	notifier := service.NewNotificationService(log, repository.NewNotificationRepository())
	return NewTeamUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
		notifier,
	)
}

func createReport(t *testing.T, db *gorm.DB, managerID uuid.UUID, role entity.UserRole) *entity.User {
	t.Helper()
	member := createTestUser(t, db, role)
	member.ManagerID = &managerID
	require.NoError(t, db.Save(member).Error)
	return member
}

func TestTeamMembersListsDirectReportsOnly(t *testing.T) {
	db := testutil.DB(t)
	uc := newTeamUsecase(db)
	ctx := context.Background()

	manager := createTestUser(t, db, entity.RoleSupervisor)
	report := createReport(t, db, manager.ID, entity.RoleCarer)
	createTestUser(t, db, entity.RoleCarer) // not a report

	list, err := uc.Members(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, list.Members, 1)
	require.Equal(t, report.ID, list.Members[0].ID)
}

func TestTeamMemberAccessControl(t *testing.T) {
	db := testutil.DB(t)
	uc := newTeamUsecase(db)
	ctx := context.Background()

	manager := createTestUser(t, db, entity.RoleSupervisor)
	otherManager := createTestUser(t, db, entity.RoleSupervisor)
	report := createReport(t, db, otherManager.ID, entity.RoleNurse)

	// Someone else's report is off limits.
	_, err := uc.Member(ctx, manager.ID, report.ID)
	require.ErrorIs(t, err, ErrNotDirectReport)

	_, err = uc.MemberEnrollments(ctx, manager.ID, report.ID)
	require.ErrorIs(t, err, ErrNotDirectReport)

	_, err = uc.Member(ctx, manager.ID, uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestTeamAssignCourse(t *testing.T) {
	db := testutil.DB(t)
	uc := newTeamUsecase(db)
	ctx := context.Background()

	manager := createTestUser(t, db, entity.RoleSupervisor)
	report := createReport(t, db, manager.ID, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	enrollment, err := uc.AssignCourse(ctx, manager.ID, report.ID, &dto.AssignCourseRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, report.ID, enrollment.UserID)
	require.Equal(t, manager.ID, *enrollment.AssignedBy)
}

func TestSendRemindersSkipsOutsiders(t *testing.T) {
	db := testutil.DB(t)
	uc := newTeamUsecase(db)
	ctx := context.Background()

	manager := createTestUser(t, db, entity.RoleSupervisor)
	report := createReport(t, db, manager.ID, entity.RoleCarer)
	outsider := createTestUser(t, db, entity.RoleCarer)

	result, err := uc.SendReminders(ctx, manager.ID, &dto.SendRemindersRequest{
		MemberIDs: []uuid.UUID{report.ID, outsider.ID, uuid.New()},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	var notifications []entity.Notification
	require.NoError(t, db.Where("user_id = ?", report.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationTypeReminder, notifications[0].Type)

	var outsiderCount int64
	require.NoError(t, db.Model(&entity.Notification{}).
		Where("user_id = ?", outsider.ID).Count(&outsiderCount).Error)
	require.EqualValues(t, 0, outsiderCount)
}

func TestTeamStats(t *testing.T) {
	db := testutil.DB(t)
	uc := newTeamUsecase(db)
	ctx := context.Background()

	manager := createTestUser(t, db, entity.RoleSupervisor)
	reportA := createReport(t, db, manager.ID, entity.RoleCarer)
	createReport(t, db, manager.ID, entity.RoleCarer)
	course := createTestCourse(t, db, entity.RoleCarer)

	enrollmentUC := newEnrollmentUsecase(db)
	_, err := enrollmentUC.Enroll(ctx, reportA.ID, &dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	_, err = enrollmentUC.UpdateProgress(ctx, reportA.ID, course.ID, 100)
	require.NoError(t, err)

	stats, err := uc.TeamStats(ctx, manager.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TeamSize)
	// Compliance pools enrollments across the team: one completed of one
	// total, the report without enrollments contributes nothing.
	require.Equal(t, 100.0, stats.AvgCompliance)
	require.Equal(t, 1, stats.TotalHours)
	require.Equal(t, 0, stats.OverdueCount)
}
