package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
	"github.com/rivergarden/training-backend/pkg/validator"
)

// SupervisorHandler serves the supervisor team endpoints. Membership is the
// explicit supervisor assignment table, not the manager hierarchy.
type SupervisorHandler struct {
	supervisorUsecase usecase.SupervisorUsecase
	validator         *validator.CustomValidator
}

func NewSupervisorHandler(supervisorUsecase usecase.SupervisorUsecase, validator *validator.CustomValidator) *SupervisorHandler {
	return &SupervisorHandler{
		supervisorUsecase: supervisorUsecase,
		validator:         validator,
	}
}

func (h *SupervisorHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	supervisorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	team, err := h.supervisorUsecase.Team(r.Context(), supervisorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list team")
		return
	}

	response.Success(w, http.StatusOK, "Team retrieved successfully", team)
}

func (h *SupervisorHandler) GetMemberEnrollments(w http.ResponseWriter, r *http.Request) {
	supervisorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	memberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	enrollments, err := h.supervisorUsecase.MemberEnrollments(r.Context(), supervisorID, memberID)
	if err != nil {
		switch err {
		case usecase.ErrNotTeamMember:
			response.Forbidden(w, "User is not a member of your team")
		default:
			response.InternalServerError(w, "Failed to list member enrollments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Member enrollments retrieved successfully", enrollments)
}

func (h *SupervisorHandler) AssignCourse(w http.ResponseWriter, r *http.Request) {
	supervisorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SupervisorAssignCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollment, err := h.supervisorUsecase.AssignCourse(r.Context(), supervisorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNotTeamMember:
			response.Forbidden(w, "User is not a member of your team")
		case usecase.ErrCourseNotFound:
			response.NotFound(w, "Course not found")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to assign course")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Course assigned successfully", enrollment)
}

func (h *SupervisorHandler) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	supervisorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RemoveCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.supervisorUsecase.RemoveCourse(r.Context(), supervisorID, &req); err != nil {
		switch err {
		case usecase.ErrEnrollmentNotFound:
			response.NotFound(w, "Enrollment not found")
		case usecase.ErrNotTeamMember:
			response.Forbidden(w, "User is not a member of your team")
		default:
			response.InternalServerError(w, "Failed to remove course")
		}
		return
	}

	response.Success(w, http.StatusOK, "Course removed successfully", nil)
}

func (h *SupervisorHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	supervisorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	stats, err := h.supervisorUsecase.Stats(r.Context(), supervisorID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}
