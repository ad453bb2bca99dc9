package usecase

import (
	"context"
	"errors"
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

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
)

type EnrollmentUsecase interface {
	GetMyEnrollments(ctx context.Context, userID uuid.UUID) (*dto.EnrollmentListResponse, error)
	Enroll(ctx context.Context, userID uuid.UUID, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, courseID int, progress int) (*dto.EnrollmentResponse, error)
	ForceComplete(ctx context.Context, userID uuid.UUID, courseID int) (*dto.EnrollmentResponse, error)
}

type enrollmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	enrollmentRepo  repository.EnrollmentRepository
	courseRepo      repository.CourseRepository
	certificateRepo repository.CertificateRepository
	notifier        service.NotificationService
}

func NewEnrollmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	certificateRepo repository.CertificateRepository,
	notifier service.NotificationService,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		db:              db,
		log:             log,
		enrollmentRepo:  enrollmentRepo,
		courseRepo:      courseRepo,
		certificateRepo: certificateRepo,
		notifier:        notifier,
	}
}

func (u *enrollmentUsecase) GetMyEnrollments(ctx context.Context, userID uuid.UUID) (*dto.EnrollmentListResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollments, err := u.enrollmentRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find enrollments for user %s: %+v", userID, err)
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

// Enroll enrolls the caller in a course. Re-enrolling an already-enrolled
// pair is not an error: the existing enrollment is returned unchanged.
func (u *enrollmentUsecase) Enroll(ctx context.Context, userID uuid.UUID, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollment, err := enroll(tx, u.enrollmentRepo, u.courseRepo, userID, req.CourseID, nil)
	if err != nil {
		u.log.Warnf("Failed to enroll user %s in course %d: %+v", userID, req.CourseID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

// UpdateProgress advances the caller's progress on a course. Progress is
// monotonic: max(current, submitted). Crossing 100 completes the enrollment
// and issues the certificate, all inside one transaction.
func (u *enrollmentUsecase) UpdateProgress(ctx context.Context, userID uuid.UUID, courseID int, progress int) (*dto.EnrollmentResponse, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollment, err := u.enrollmentRepo.FindByUserAndCourse(tx, userID, courseID)
	if err != nil {
		u.log.Warnf("Failed to find enrollment: %+v", err)
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	now := time.Now()

	if enrollment.Status == entity.StatusNotStarted && progress > 0 {
		enrollment.Status = entity.StatusInProgress
		enrollment.StartedDate = &now
	}

	if progress > enrollment.Progress {
		enrollment.Progress = progress
	}

	if enrollment.Progress >= 100 && enrollment.Status != entity.StatusCompleted {
		if err := u.complete(tx, enrollment, now); err != nil {
			return nil, err
		}
	}

	if err := u.enrollmentRepo.Update(tx, enrollment); err != nil {
		u.log.Warnf("Failed to update enrollment %s: %+v", enrollment.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

// ForceComplete marks the caller's enrollment completed regardless of
// current progress, issuing the certificate if absent.
func (u *enrollmentUsecase) ForceComplete(ctx context.Context, userID uuid.UUID, courseID int) (*dto.EnrollmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	enrollment, err := u.enrollmentRepo.FindByUserAndCourse(tx, userID, courseID)
	if err != nil {
		u.log.Warnf("Failed to find enrollment: %+v", err)
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	enrollment.Progress = 100
	if err := u.complete(tx, enrollment, time.Now()); err != nil {
		return nil, err
	}

	if err := u.enrollmentRepo.Update(tx, enrollment); err != nil {
		u.log.Warnf("Failed to update enrollment %s: %+v", enrollment.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

// complete transitions the enrollment to completed and issues the
// certificate unless one already exists for the (user, course) pair.
// Re-completion never duplicates a certificate: the existence check is the
// fast path and the unique constraint catches concurrent issuers.
func (u *enrollmentUsecase) complete(tx *gorm.DB, enrollment *entity.Enrollment, now time.Time) error {
	enrollment.Status = entity.StatusCompleted
	enrollment.CompletedDate = &now

	course, err := u.courseRepo.FindByID(tx, enrollment.CourseID)
	if err != nil {
		u.log.Warnf("Failed to find course %d: %+v", enrollment.CourseID, err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}

	existing, err := u.certificateRepo.FindByUserAndCourse(tx, enrollment.UserID, enrollment.CourseID)
	if err != nil {
		u.log.Warnf("Failed to check existing certificate: %+v", err)
		return err
	}
	if existing != nil {
		return nil
	}

	score := 100.0
	if enrollment.Score != nil {
		score = *enrollment.Score
	}

	code := uuid.New().String()
	certificate := &entity.Certificate{
		Code:       code,
		UserID:     enrollment.UserID,
		CourseID:   enrollment.CourseID,
		ExpiryDate: now.AddDate(0, 0, course.ExpiryDays),
		Score:      score,
		QRCode:     "certificate:" + code,
	}

	if err := u.certificateRepo.Create(tx, certificate); err != nil {
		if isDuplicateKeyError(err, "idx_certificates_user_course") {
			// Lost the race to a concurrent completion; the certificate
			// already exists, which is exactly the invariant we want.
			return nil
		}
		u.log.Warnf("Failed to issue certificate: %+v", err)
		return err
	}

	if err := u.notifier.CertificateIssued(tx, enrollment.UserID, course.Title); err != nil {
		return err
	}

	u.log.Infof("Certificate issued: user=%s, course=%d, code=%s", enrollment.UserID, enrollment.CourseID, code)
	return nil
}

// enroll creates the enrollment if absent, returning the existing row when
// the (user, course) pair is already enrolled. assignedBy is nil for
// self-enrollment.
func enroll(
	tx *gorm.DB,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	userID uuid.UUID,
	courseID int,
	assignedBy *uuid.UUID,
) (*entity.Enrollment, error) {
	course, err := courseRepo.FindByID(tx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	existing, err := enrollmentRepo.FindByUserAndCourse(tx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	due := time.Now().AddDate(0, 0, course.ExpiryDays)
	enrollment := &entity.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     entity.StatusNotStarted,
		Progress:   0,
		DueDate:    &due,
		AssignedBy: assignedBy,
	}

	if err := enrollmentRepo.Create(tx, enrollment); err != nil {
		if isDuplicateKeyError(err, "idx_enrollments_user_course") {
			return enrollmentRepo.FindByUserAndCourse(tx, userID, courseID)
		}
		return nil, err
	}

	return enrollment, nil
}

// markOverdue flips not-started and in-progress enrollments whose due date
// has elapsed to overdue, persisting the change. Overdue is recomputed on
// read; there is no background sweep.
func markOverdue(tx *gorm.DB, enrollmentRepo repository.EnrollmentRepository, enrollments []entity.Enrollment, now time.Time) error {
	for i := range enrollments {
		e := &enrollments[i]
		if e.Status == entity.StatusOverdue || !e.IsOverdueAt(now) {
			continue
		}
		e.Status = entity.StatusOverdue
		if err := enrollmentRepo.Update(tx, e); err != nil {
			return err
		}
	}
	return nil
}
