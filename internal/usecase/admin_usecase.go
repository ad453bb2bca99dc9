package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/converter"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/domain/repository"
)

var ErrAssignmentNotFound = errors.New("supervisor assignment not found")

type AdminUsecase interface {
	AllUsers(ctx context.Context) ([]dto.UserResponse, error)
	AssignSupervisor(ctx context.Context, req *dto.AssignSupervisorRequest) (*dto.AssignmentResponse, error)
	UnassignSupervisor(ctx context.Context, req *dto.UnassignSupervisorRequest) error
}

type adminUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
}

func NewAdminUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository) AdminUsecase {
	return &adminUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (u *adminUsecase) AllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *converter.UserToResponse(&users[i]))
	}
	return responses, nil
}

// AssignSupervisor links a member to a supervisor's team. Assigning an
// existing pair returns the existing link unchanged. The first assignment a
// member receives also backfills their manager_id; a member who already has
// a manager keeps it.
func (u *adminUsecase) AssignSupervisor(ctx context.Context, req *dto.AssignSupervisorRequest) (*dto.AssignmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supervisor, err := u.userRepo.FindByID(tx, req.SupervisorID)
	if err != nil {
		u.log.Warnf("Failed to find supervisor %s: %+v", req.SupervisorID, err)
		return nil, err
	}
	if supervisor == nil {
		return nil, ErrUserNotFound
	}

	member, err := u.userRepo.FindByID(tx, req.MemberID)
	if err != nil {
		u.log.Warnf("Failed to find member %s: %+v", req.MemberID, err)
		return nil, err
	}
	if member == nil {
		return nil, ErrUserNotFound
	}

	existing, err := u.assignmentRepo.FindBySupervisorAndMember(tx, req.SupervisorID, req.MemberID)
	if err != nil {
		u.log.Warnf("Failed to check existing assignment: %+v", err)
		return nil, err
	}

	assignment := existing
	if assignment == nil {
		assignment = &entity.SupervisorAssignment{
			SupervisorID: req.SupervisorID,
			MemberID:     req.MemberID,
		}
		if err := u.assignmentRepo.Create(tx, assignment); err != nil {
			if isDuplicateKeyError(err, "idx_assignments_supervisor_member") {
				assignment, err = u.assignmentRepo.FindBySupervisorAndMember(tx, req.SupervisorID, req.MemberID)
				if err != nil || assignment == nil {
					return nil, err
				}
			} else {
				u.log.Warnf("Failed to create assignment: %+v", err)
				return nil, err
			}
		}
	}

	if member.ManagerID == nil {
		member.ManagerID = &req.SupervisorID
		if err := u.userRepo.Update(tx, member); err != nil {
			u.log.Warnf("Failed to set manager for member %s: %+v", member.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AssignmentResponse{
		ID:           assignment.ID,
		SupervisorID: assignment.SupervisorID,
		MemberID:     assignment.MemberID,
		CreatedAt:    assignment.CreatedAt,
	}, nil
}

// UnassignSupervisor removes a supervisor-member link. The member's
// manager_id is left alone; unassignment only affects the supervisor's
// team view.
func (u *adminUsecase) UnassignSupervisor(ctx context.Context, req *dto.UnassignSupervisorRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assignment, err := u.assignmentRepo.FindBySupervisorAndMember(tx, req.SupervisorID, req.MemberID)
	if err != nil {
		u.log.Warnf("Failed to find assignment: %+v", err)
		return err
	}
	if assignment == nil {
		return ErrAssignmentNotFound
	}

	if err := u.assignmentRepo.Delete(tx, assignment); err != nil {
		u.log.Warnf("Failed to delete assignment %s: %+v", assignment.ID, err)
		return err
	}

	return tx.Commit().Error
}
