package entity

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is the proof-of-completion record. It is issued exactly once
// per (user, course) pair, when the enrollment first reaches completed, and
// carries its own expiry independent of the enrollment's lifecycle. Removing
// the enrollment does not retract the certificate.
type Certificate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code       string    `gorm:"column:certificate_code;type:varchar(64);uniqueIndex;not null" json:"certificate_code"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_certificates_user_course" json:"user_id"`
	CourseID   int       `gorm:"not null;uniqueIndex:idx_certificates_user_course" json:"course_id"`
	IssueDate  time.Time `gorm:"autoCreateTime" json:"issue_date"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
	Score      float64   `gorm:"not null" json:"score"`
	QRCode     string    `gorm:"type:text" json:"qr_code,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) IsExpiredAt(now time.Time) bool {
	return c.ExpiryDate.Before(now)
}
