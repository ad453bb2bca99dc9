package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type EnrollRequest struct {
	CourseID int `json:"course_id" validate:"required,min=1"`
}

type UpdateProgressRequest struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

type AssignCourseRequest struct {
	CourseID int `json:"course_id" validate:"required,min=1"`
}

type SupervisorAssignCourseRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	CourseID int       `json:"course_id" validate:"required,min=1"`
}

type RemoveCourseRequest struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
}

// Response DTOs

type EnrollmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	CourseID       int        `json:"course_id"`
	CourseTitle    string     `json:"course_title,omitempty"`
	CourseCategory string     `json:"course_category,omitempty"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	Score          *float64   `json:"score,omitempty"`
	StartedDate    *time.Time `json:"started_date,omitempty"`
	CompletedDate  *time.Time `json:"completed_date,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	AssignedBy     *uuid.UUID `json:"assigned_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	Total       int                  `json:"total"`
}
