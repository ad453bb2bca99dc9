package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/converter"
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/repository"
	"github.com/rivergarden/training-backend/internal/service"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateUsecase interface {
	MyCertificates(ctx context.Context, userID uuid.UUID) (*dto.CertificateListResponse, error)
	// Download renders the certificate PDF. The filename is derived from
	// the certificate code.
	Download(ctx context.Context, userID, certificateID uuid.UUID) ([]byte, string, error)
}

type certificateUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	certificateRepo repository.CertificateRepository
	userRepo        repository.UserRepository
	courseRepo      repository.CourseRepository
	renderer        *service.CertificateRenderer
}

func NewCertificateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	certificateRepo repository.CertificateRepository,
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	renderer *service.CertificateRenderer,
) CertificateUsecase {
	return &certificateUsecase{
		db:              db,
		log:             log,
		certificateRepo: certificateRepo,
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		renderer:        renderer,
	}
}

func (u *certificateUsecase) MyCertificates(ctx context.Context, userID uuid.UUID) (*dto.CertificateListResponse, error) {
	certificates, err := u.certificateRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find certificates for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CertificateListResponse{
		Certificates: converter.CertificatesToResponses(certificates),
		Total:        len(certificates),
	}, nil
}

// Download is owner-scoped: requesting another user's certificate reads as
// not found.
func (u *certificateUsecase) Download(ctx context.Context, userID, certificateID uuid.UUID) ([]byte, string, error) {
	db := u.db.WithContext(ctx)

	certificate, err := u.certificateRepo.FindByID(db, certificateID)
	if err != nil {
		u.log.Warnf("Failed to find certificate %s: %+v", certificateID, err)
		return nil, "", err
	}
	if certificate == nil || certificate.UserID != userID {
		return nil, "", ErrCertificateNotFound
	}

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	course, err := u.courseRepo.FindByID(db, certificate.CourseID)
	if err != nil {
		return nil, "", err
	}
	if course == nil {
		return nil, "", ErrCourseNotFound
	}

	pdfBytes, err := u.renderer.Render(certificate, course, user)
	if err != nil {
		u.log.Warnf("Failed to render certificate %s: %+v", certificateID, err)
		return nil, "", err
	}

	filename := "certificate-" + certificate.Code + ".pdf"
	return pdfBytes, filename, nil
}
