package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/config"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/repository"
	"github.com/rivergarden/training-backend/internal/testutil"
	"github.com/rivergarden/training-backend/pkg/jwt"
)

// newAuthUsecase builds an auth usecase without redis; the tests here cover
// the registration path, which never touches the token store.
func newAuthUsecase(db *gorm.DB) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	return NewAuthUsecase(db, testLogger(), config.AuthConfig{}, repository.NewUserRepository(), jwtService, nil)
}

func TestRegister(t *testing.T) {
	db := testutil.DB(t)
	uc := newAuthUsecase(db)

	email := fmt.Sprintf("register-%s@example.com", uuid.New())
	user, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "New Carer",
		Email:    email,
		Password: "s3cure-password",
		Role:     "Carer",
	})
	require.NoError(t, err)
	require.Equal(t, email, user.Email)
	require.Equal(t, "Carer", user.Role)

	// The stored credential is a bcrypt hash, never the plaintext.
	var stored entity.User
	require.NoError(t, db.First(&stored, "email = ?", email).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cure-password")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	uc := newAuthUsecase(db)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Name:     "First",
		Email:    fmt.Sprintf("dup-%s@example.com", uuid.New()),
		Password: "password-one",
		Role:     "Nurse",
	}

	_, err := uc.Register(ctx, req)
	require.NoError(t, err)

	req.Name = "Second"
	_, err = uc.Register(ctx, req)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	db := testutil.DB(t)
	uc := newAuthUsecase(db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Nobody",
		Email:    fmt.Sprintf("role-%s@example.com", uuid.New()),
		Password: "password",
		Role:     "Astronaut",
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestGetCurrentUser(t *testing.T) {
	db := testutil.DB(t)
	uc := newAuthUsecase(db)

	user := createTestUser(t, db, entity.RoleOfficeStaff)

	resp, err := uc.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, resp.Email)

	_, err = uc.GetCurrentUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}
