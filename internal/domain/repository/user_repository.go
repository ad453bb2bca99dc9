package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

// Repositories take the *gorm.DB as their first argument so a usecase can
// pass either the root handle or an open transaction. Find methods return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error)
	FindByManagerID(db *gorm.DB, managerID uuid.UUID) ([]entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
