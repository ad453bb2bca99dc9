package converter

import (
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	response := &dto.CertificateResponse{
		ID:         certificate.ID,
		Code:       certificate.Code,
		UserID:     certificate.UserID,
		CourseID:   certificate.CourseID,
		IssueDate:  certificate.IssueDate,
		ExpiryDate: certificate.ExpiryDate,
		Score:      certificate.Score,
		QRCode:     certificate.QRCode,
	}

	if certificate.Course.ID != 0 {
		response.CourseName = certificate.Course.Title
	}
	if certificate.User.Name != "" {
		response.UserName = certificate.User.Name
	}

	return response
}

func CertificatesToResponses(certificates []entity.Certificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, len(certificates))
	for i, certificate := range certificates {
		responses[i] = *CertificateToResponse(&certificate)
	}
	return responses
}
