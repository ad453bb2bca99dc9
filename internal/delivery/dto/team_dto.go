package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AssignSupervisorRequest struct {
	SupervisorID uuid.UUID `json:"supervisor_id" validate:"required"`
	MemberID     uuid.UUID `json:"member_id" validate:"required"`
}

type UnassignSupervisorRequest struct {
	SupervisorID uuid.UUID `json:"supervisor_id" validate:"required"`
	MemberID     uuid.UUID `json:"member_id" validate:"required"`
}

type SendRemindersRequest struct {
	MemberIDs []uuid.UUID `json:"member_ids" validate:"required,min=1"`
}

// Response DTOs

type TeamMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Branch   string    `json:"branch,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinDate time.Time `json:"join_date"`
}

type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int                  `json:"total"`
}

type AssignmentResponse struct {
	ID           uuid.UUID `json:"id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	MemberID     uuid.UUID `json:"member_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type SendRemindersResponse struct {
	Count int `json:"count"`
}
