package dto

import (
	"time"

	"github.com/google/uuid"
)

type CertificateResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"certificate_code"`
	UserID     uuid.UUID `json:"user_id"`
	CourseID   int       `json:"course_id"`
	CourseName string    `json:"course_name,omitempty"`
	UserName   string    `json:"user_name,omitempty"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	Score      float64   `json:"score"`
	QRCode     string    `json:"qr_code,omitempty"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}
