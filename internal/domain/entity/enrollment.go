package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the enrollment lifecycle state. The happy path is
// not-started -> in-progress -> completed; overdue is entered from either
// of the first two states when the due date elapses without completion.
type EnrollmentStatus string

const (
	StatusNotStarted EnrollmentStatus = "not-started"
	StatusInProgress EnrollmentStatus = "in-progress"
	StatusCompleted  EnrollmentStatus = "completed"
	StatusOverdue    EnrollmentStatus = "overdue"
)

func (s EnrollmentStatus) String() string {
	return string(s)
}

// Enrollment tracks one user's relationship to one course. The (user, course)
// pair is unique; progress is monotonically non-decreasing.
type Enrollment struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID      int              `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`
	Status        EnrollmentStatus `gorm:"type:varchar(20);not null;default:'not-started'" json:"status"`
	Progress      int              `gorm:"not null;default:0" json:"progress"`
	Score         *float64         `json:"score,omitempty"`
	StartedDate   *time.Time       `json:"started_date,omitempty"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	AssignedBy    *uuid.UUID       `gorm:"type:uuid" json:"assigned_by,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) IsCompleted() bool {
	return e.Status == StatusCompleted
}

// IsOverdueAt reports whether the enrollment should carry the overdue status
// at the given instant: the due date has elapsed and the course was never
// completed. Overdue is recomputed on read; there is no background sweep.
func (e *Enrollment) IsOverdueAt(now time.Time) bool {
	if e.Status == StatusCompleted {
		return false
	}
	return e.DueDate != nil && e.DueDate.Before(now)
}
