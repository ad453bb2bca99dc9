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

var ErrNotDirectReport = errors.New("user does not report to you")

type TeamUsecase interface {
	Members(ctx context.Context, managerID uuid.UUID) (*dto.TeamListResponse, error)
	Member(ctx context.Context, managerID, memberID uuid.UUID) (*dto.TeamMemberResponse, error)
	MemberEnrollments(ctx context.Context, managerID, memberID uuid.UUID) (*dto.EnrollmentListResponse, error)
	AssignCourse(ctx context.Context, managerID, memberID uuid.UUID, req *dto.AssignCourseRequest) (*dto.EnrollmentResponse, error)
	TeamStats(ctx context.Context, managerID uuid.UUID) (*dto.TeamStatsResponse, error)
	SendReminders(ctx context.Context, managerID uuid.UUID, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error)
}

type teamUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	notifier       service.NotificationService
}

func NewTeamUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	notifier service.NotificationService,
) TeamUsecase {
	return &teamUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		notifier:       notifier,
	}
}

// requireReport loads the member and rejects the operation unless the
// member's manager_id points at the caller. The manager hierarchy is
// separate from supervisor assignments.
func (u *teamUsecase) requireReport(db *gorm.DB, managerID, memberID uuid.UUID) (*dto.TeamMemberResponse, error) {
	member, err := u.userRepo.FindByID(db, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrUserNotFound
	}
	if member.ManagerID == nil || *member.ManagerID != managerID {
		return nil, ErrNotDirectReport
	}

	resp := converter.UserToTeamMember(member)
	return &resp, nil
}

func (u *teamUsecase) Members(ctx context.Context, managerID uuid.UUID) (*dto.TeamListResponse, error) {
	members, err := u.userRepo.FindByManagerID(u.db.WithContext(ctx), managerID)
	if err != nil {
		u.log.Warnf("Failed to find reports for manager %s: %+v", managerID, err)
		return nil, err
	}

	return &dto.TeamListResponse{
		Members: converter.UsersToTeamMembers(members),
		Total:   len(members),
	}, nil
}

func (u *teamUsecase) Member(ctx context.Context, managerID, memberID uuid.UUID) (*dto.TeamMemberResponse, error) {
	return u.requireReport(u.db.WithContext(ctx), managerID, memberID)
}

func (u *teamUsecase) MemberEnrollments(ctx context.Context, managerID, memberID uuid.UUID) (*dto.EnrollmentListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.requireReport(tx, managerID, memberID); err != nil {
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

// AssignCourse enrolls a direct report in a course. Idempotent for an
// already-enrolled pair; a fresh assignment notifies the member.
func (u *teamUsecase) AssignCourse(ctx context.Context, managerID, memberID uuid.UUID, req *dto.AssignCourseRequest) (*dto.EnrollmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.requireReport(tx, managerID, memberID); err != nil {
		return nil, err
	}

	existing, err := u.enrollmentRepo.FindByUserAndCourse(tx, memberID, req.CourseID)
	if err != nil {
		u.log.Warnf("Failed to check existing enrollment: %+v", err)
		return nil, err
	}

	enrollment, err := enroll(tx, u.enrollmentRepo, u.courseRepo, memberID, req.CourseID, &managerID)
	if err != nil {
		u.log.Warnf("Failed to assign course %d to member %s: %+v", req.CourseID, memberID, err)
		return nil, err
	}

	if existing == nil {
		manager, err := u.userRepo.FindByID(tx, managerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, ErrUserNotFound
		}
		course, err := u.courseRepo.FindByID(tx, req.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, ErrCourseNotFound
		}
		if err := u.notifier.CourseAssigned(tx, memberID, course.Title, manager.Name); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

func (u *teamUsecase) TeamStats(ctx context.Context, managerID uuid.UUID) (*dto.TeamStatsResponse, error) {
	db := u.db.WithContext(ctx)

	members, err := u.userRepo.FindByManagerID(db, managerID)
	if err != nil {
		u.log.Warnf("Failed to find reports for manager %s: %+v", managerID, err)
		return nil, err
	}

	var enrollments []entity.Enrollment
	for _, member := range members {
		memberEnrollments, err := u.enrollmentRepo.FindByUserID(db, member.ID)
		if err != nil {
			u.log.Warnf("Failed to find enrollments for member %s: %+v", member.ID, err)
			return nil, err
		}
		enrollments = append(enrollments, memberEnrollments...)
	}

	stats := ComputeTeamStats(len(members), enrollments, time.Now())
	return &stats, nil
}

// ComputeTeamStats pools a team's enrollments into one compliance figure:
// completed over total across the whole team, rounded to a whole number. A
// member with many enrollments therefore weighs more than one with few.
func ComputeTeamStats(teamSize int, enrollments []entity.Enrollment, now time.Time) dto.TeamStatsResponse {
	stats := dto.TeamStatsResponse{TeamSize: teamSize}

	var completed int
	for _, e := range enrollments {
		switch {
		case e.IsCompleted():
			completed++
			stats.TotalHours++
		case e.Status == entity.StatusOverdue || e.IsOverdueAt(now):
			stats.OverdueCount++
		}
	}

	if len(enrollments) > 0 {
		stats.AvgCompliance = math.Round(float64(completed) / float64(len(enrollments)) * 100)
	}

	return stats
}

// SendReminders writes a training reminder notification for each listed
// direct report. Members outside the caller's reports are skipped rather
// than failing the whole batch; the response counts reminders actually sent.
func (u *teamUsecase) SendReminders(ctx context.Context, managerID uuid.UUID, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	manager, err := u.userRepo.FindByID(tx, managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, ErrUserNotFound
	}

	sent := 0
	for _, memberID := range req.MemberIDs {
		if _, err := u.requireReport(tx, managerID, memberID); err != nil {
			if errors.Is(err, ErrNotDirectReport) || errors.Is(err, ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		if err := u.notifier.TrainingReminder(tx, memberID, manager.Name); err != nil {
			u.log.Warnf("Failed to create reminder for member %s: %+v", memberID, err)
			return nil, err
		}
		sent++
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SendRemindersResponse{Count: sent}, nil
}
