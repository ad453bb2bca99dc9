package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/testutil"
)

func TestListVisibleCourses(t *testing.T) {
	db := testutil.DB(t)
	uc := NewCourseUsecase(db, testLogger(), repository.NewCourseRepository(), repository.NewEnrollmentRepository())
	ctx := context.Background()

	user := createTestUser(t, db, entity.RoleCarer)
	carerCourse := createTestCourse(t, db, entity.RoleCarer)
	nurseCourse := createTestCourse(t, db, entity.RoleNurse)
	enrolledNurseCourse := createTestCourse(t, db, entity.RoleNurse)

	// An enrollment grants visibility regardless of role tags.
	enrollmentUC := newEnrollmentUsecase(db)
	_, err := enrollmentUC.Enroll(ctx, user.ID, &dto.EnrollRequest{CourseID: enrolledNurseCourse.ID})
	require.NoError(t, err)

	list, err := uc.ListVisible(ctx, user.ID, user.Role)
	require.NoError(t, err)

	visible := make(map[int]bool, len(list.Courses))
	for _, c := range list.Courses {
		visible[c.ID] = true
	}

	require.True(t, visible[carerCourse.ID], "role-tagged course should be visible")
	require.True(t, visible[enrolledNurseCourse.ID], "enrolled course should be visible despite tags")
	require.False(t, visible[nurseCourse.ID], "untagged unenrolled course should be hidden")

	// Results come back ordered by course ID ascending.
	for i := 1; i < len(list.Courses); i++ {
		require.Less(t, list.Courses[i-1].ID, list.Courses[i].ID)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	db := testutil.DB(t)
	uc := NewCourseUsecase(db, testLogger(), repository.NewCourseRepository(), repository.NewEnrollmentRepository())

	_, err := uc.GetCourse(context.Background(), 99999999)
	require.ErrorIs(t, err, ErrCourseNotFound)
}
