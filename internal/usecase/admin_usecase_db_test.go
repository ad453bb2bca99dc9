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
	"github.com/rivergarden/training-backend/internal/testutil"
)

func newAdminUsecase(db *gorm.DB) AdminUsecase {
	return NewAdminUsecase(db, testLogger(), repository.NewUserRepository(), repository.NewAssignmentRepository())
}

func TestAssignSupervisorIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	uc := newAdminUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleCarer)

	req := &dto.AssignSupervisorRequest{SupervisorID: supervisor.ID, MemberID: member.ID}

	first, err := uc.AssignSupervisor(ctx, req)
	require.NoError(t, err)

	second, err := uc.AssignSupervisor(ctx, req)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.SupervisorAssignment{}).
		Where("supervisor_id = ? AND member_id = ?", supervisor.ID, member.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAssignSupervisorBackfillsManager(t *testing.T) {
	db := testutil.DB(t)
	uc := newAdminUsecase(db)
	ctx := context.Background()

	firstSupervisor := createTestUser(t, db, entity.RoleSupervisor)
	secondSupervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleNurse)

	_, err := uc.AssignSupervisor(ctx, &dto.AssignSupervisorRequest{
		SupervisorID: firstSupervisor.ID,
		MemberID:     member.ID,
	})
	require.NoError(t, err)

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", member.ID).Error)
	require.NotNil(t, stored.ManagerID)
	require.Equal(t, firstSupervisor.ID, *stored.ManagerID)

	// A later assignment to a different supervisor leaves the manager alone.
	_, err = uc.AssignSupervisor(ctx, &dto.AssignSupervisorRequest{
		SupervisorID: secondSupervisor.ID,
		MemberID:     member.ID,
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&stored, "id = ?", member.ID).Error)
	require.Equal(t, firstSupervisor.ID, *stored.ManagerID)
}

func TestAssignSupervisorUnknownUser(t *testing.T) {
	db := testutil.DB(t)
	uc := newAdminUsecase(db)

	supervisor := createTestUser(t, db, entity.RoleSupervisor)

	_, err := uc.AssignSupervisor(context.Background(), &dto.AssignSupervisorRequest{
		SupervisorID: supervisor.ID,
		MemberID:     uuid.New(),
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnassignSupervisor(t *testing.T) {
	db := testutil.DB(t)
	uc := newAdminUsecase(db)
	ctx := context.Background()

	supervisor := createTestUser(t, db, entity.RoleSupervisor)
	member := createTestUser(t, db, entity.RoleCarer)

	_, err := uc.AssignSupervisor(ctx, &dto.AssignSupervisorRequest{
		SupervisorID: supervisor.ID,
		MemberID:     member.ID,
	})
	require.NoError(t, err)

	req := &dto.UnassignSupervisorRequest{SupervisorID: supervisor.ID, MemberID: member.ID}
	require.NoError(t, uc.UnassignSupervisor(ctx, req))

	// Removing a link that no longer exists reads as not found.
	require.ErrorIs(t, uc.UnassignSupervisor(ctx, req), ErrAssignmentNotFound)
}
