package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/converter"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/domain/repository"
	"github.com/rivergarden/training-backend/internal/service"
)

var ErrNotTeamMember = errors.New("user is not a member of your team")

type SupervisorUsecase interface {
	Team(ctx context.Context, supervisorID uuid.UUID) (*dto.TeamListResponse, error)
	MemberEnrollments(ctx context.Context, supervisorID, memberID uuid.UUID) (*dto.EnrollmentListResponse, error)
	AssignCourse(ctx context.Context, supervisorID uuid.UUID, req *dto.SupervisorAssignCourseRequest) (*dto.EnrollmentResponse, error)
	RemoveCourse(ctx context.Context, supervisorID uuid.UUID, req *dto.RemoveCourseRequest) error
	Stats(ctx context.Context, supervisorID uuid.UUID) (*dto.SupervisorStatsResponse, error)
}

type supervisorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	notifier       service.NotificationService
}

func NewSupervisorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	assignmentRepo repository.AssignmentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	notifier service.NotificationService,
) SupervisorUsecase {
	return &supervisorUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		notifier:       notifier,
	}
}

// teamIDs resolves the supervisor's team through the assignment table.
// Supervisors see exactly the members explicitly assigned to them, never
// the manager hierarchy.
func (u *supervisorUsecase) teamIDs(db *gorm.DB, supervisorID uuid.UUID) ([]uuid.UUID, error) {
	assignments, err := u.assignmentRepo.FindBySupervisorID(db, supervisorID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.MemberID)
	}
	return ids, nil
}

// requireMember rejects operations on users outside the supervisor's team.
func (u *supervisorUsecase) requireMember(db *gorm.DB, supervisorID, memberID uuid.UUID) error {
	assignment, err := u.assignmentRepo.FindBySupervisorAndMember(db, supervisorID, memberID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return ErrNotTeamMember
	}
	return nil
}

func (u *supervisorUsecase) Team(ctx context.Context, supervisorID uuid.UUID) (*dto.TeamListResponse, error) {
	db := u.db.WithContext(ctx)

	ids, err := u.teamIDs(db, supervisorID)
	if err != nil {
		u.log.Warnf("Failed to resolve team for supervisor %s: %+v", supervisorID, err)
		return nil, err
	}

	members, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to load team members: %+v", err)
		return nil, err
	}

	return &dto.TeamListResponse{
		Members: converter.UsersToTeamMembers(members),
		Total:   len(members),
	}, nil
}

func (u *supervisorUsecase) MemberEnrollments(ctx context.Context, supervisorID, memberID uuid.UUID) (*dto.EnrollmentListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.requireMember(tx, supervisorID, memberID); err != nil {
		return nil, err
	}

	enrollments, err := u.enrollmentRepo.FindByUserID(tx, memberID)
	if err != nil {
		u.log.Warnf("Failed to find enrollments for member %s: %+v", memberID, err)
		return nil, err
	}

	if err := markOverdue(tx, u.enrollmentRepo, enrollments, time.Now()); err != nil {
		u.log.Warnf("Failed to mark overdue enrollments: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.EnrollmentListResponse{
		Enrollments: converter.EnrollmentsToResponses(enrollments),
		Total:       len(enrollments),
	}, nil
}

// AssignCourse enrolls a team member in a course on the supervisor's
// behalf. Assigning an already-enrolled member returns the existing
// enrollment unchanged; a fresh assignment also notifies the member.
func (u *supervisorUsecase) AssignCourse(ctx context.Context, supervisorID uuid.UUID, req *dto.SupervisorAssignCourseRequest) (*dto.EnrollmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.requireMember(tx, supervisorID, req.MemberID); err != nil {
		return nil, err
	}

	existing, err := u.enrollmentRepo.FindByUserAndCourse(tx, req.MemberID, req.CourseID)
	if err != nil {
		u.log.Warnf("Failed to check existing enrollment: %+v", err)
		return nil, err
	}

	enrollment, err := enroll(tx, u.enrollmentRepo, u.courseRepo, req.MemberID, req.CourseID, &supervisorID)
	if err != nil {
		u.log.Warnf("Failed to assign course %d to member %s: %+v", req.CourseID, req.MemberID, err)
		return nil, err
	}

	if existing == nil {
		supervisor, err := u.userRepo.FindByID(tx, supervisorID)
		if err != nil {
			return nil, err
		}
		if supervisor == nil {
			return nil, ErrUserNotFound
		}
		course, err := u.courseRepo.FindByID(tx, req.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, ErrCourseNotFound
		}
		if err := u.notifier.CourseAssigned(tx, req.MemberID, course.Title, supervisor.Name); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

// RemoveCourse deletes a team member's enrollment by enrollment ID. Any
// certificate the member earned for the course is left intact.
func (u *supervisorUsecase) RemoveCourse(ctx context.Context, supervisorID uuid.UUID, req *dto.RemoveCourseRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollment, err := u.enrollmentRepo.FindByID(tx, req.EnrollmentID)
	if err != nil {
		u.log.Warnf("Failed to find enrollment: %+v", err)
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}

	if err := u.requireMember(tx, supervisorID, enrollment.UserID); err != nil {
		return err
	}

	if err := u.enrollmentRepo.Delete(tx, enrollment); err != nil {
		u.log.Warnf("Failed to delete enrollment %s: %+v", enrollment.ID, err)
		return err
	}

	return tx.Commit().Error
}

func (u *supervisorUsecase) Stats(ctx context.Context, supervisorID uuid.UUID) (*dto.SupervisorStatsResponse, error) {
	db := u.db.WithContext(ctx)

	ids, err := u.teamIDs(db, supervisorID)
	if err != nil {
		u.log.Warnf("Failed to resolve team for supervisor %s: %+v", supervisorID, err)
		return nil, err
	}

	enrollments, err := u.enrollmentRepo.FindByUserIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to load team enrollments: %+v", err)
		return nil, err
	}

	stats := ComputeSupervisorStats(len(ids), enrollments)
	return &stats, nil
}

// ComputeSupervisorStats aggregates a team's enrollments. ActiveCourses
// counts in-progress enrollments; CompletionRate is completed over total
// enrollments to one decimal, zero for an empty team.
func ComputeSupervisorStats(teamSize int, enrollments []entity.Enrollment) dto.SupervisorStatsResponse {
	stats := dto.SupervisorStatsResponse{
		TeamSize:         teamSize,
		TotalEnrollments: len(enrollments),
	}

	for _, e := range enrollments {
		switch e.Status {
		case entity.StatusInProgress:
			stats.ActiveCourses++
		case entity.StatusCompleted:
			stats.CompletedCourses++
		}
	}

	if stats.TotalEnrollments > 0 {
		rate := float64(stats.CompletedCourses) / float64(stats.TotalEnrollments) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	return stats
}
