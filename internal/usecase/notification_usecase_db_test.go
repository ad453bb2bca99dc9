package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/testutil"
)

func TestMarkReadIsOwnerScoped(t *testing.T) {
	db := testutil.DB(t)
	uc := NewNotificationUsecase(db, testLogger(), repository.NewNotificationRepository())
	ctx := context.Background()

	owner := createTestUser(t, db, entity.RoleCarer)
	other := createTestUser(t, db, entity.RoleCarer)

	notification := &entity.Notification{
		UserID:  owner.ID,
		Title:   "Training reminder",
		Message: "Finish your training.",
		Type:    entity.NotificationTypeReminder,
	}
	require.NoError(t, db.Create(notification).Error)

	// Another user cannot mark it read.
	_, err := uc.MarkRead(ctx, other.ID, notification.ID)
	require.ErrorIs(t, err, ErrNotificationNotFound)

	marked, err := uc.MarkRead(ctx, owner.ID, notification.ID)
	require.NoError(t, err)
	require.True(t, marked.Read)

	// Marking again stays read.
	marked, err = uc.MarkRead(ctx, owner.ID, notification.ID)
	require.NoError(t, err)
	require.True(t, marked.Read)

	list, err := uc.MyNotifications(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	require.Equal(t, 0, list.Unread)
}
