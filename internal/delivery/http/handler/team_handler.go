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

// TeamHandler serves the manager hierarchy endpoints. Team membership here
// means manager_id points at the caller; supervisor assignments are served
// by SupervisorHandler.
type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
	validator   *validator.CustomValidator
}

func NewTeamHandler(teamUsecase usecase.TeamUsecase, validator *validator.CustomValidator) *TeamHandler {
	return &TeamHandler{
		teamUsecase: teamUsecase,
		validator:   validator,
	}
}

func (h *TeamHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	members, err := h.teamUsecase.Members(r.Context(), managerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list team members")
		return
	}

	response.Success(w, http.StatusOK, "Team members retrieved successfully", members)
}

func (h *TeamHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	memberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	member, err := h.teamUsecase.Member(r.Context(), managerID, memberID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Member not found")
		case usecase.ErrNotDirectReport:
			response.Forbidden(w, "User does not report to you")
		default:
			response.InternalServerError(w, "Failed to get member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Member retrieved successfully", member)
}

func (h *TeamHandler) GetMemberEnrollments(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	memberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	enrollments, err := h.teamUsecase.MemberEnrollments(r.Context(), managerID, memberID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Member not found")
		case usecase.ErrNotDirectReport:
			response.Forbidden(w, "User does not report to you")
		default:
			response.InternalServerError(w, "Failed to list member enrollments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Member enrollments retrieved successfully", enrollments)
}

func (h *TeamHandler) AssignCourse(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	memberID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	var req dto.AssignCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollment, err := h.teamUsecase.AssignCourse(r.Context(), managerID, memberID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Member not found")
		case usecase.ErrNotDirectReport:
			response.Forbidden(w, "User does not report to you")
		case usecase.ErrCourseNotFound:
			response.NotFound(w, "Course not found")
		default:
			response.InternalServerError(w, "Failed to assign course")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Course assigned successfully", enrollment)
}

func (h *TeamHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	stats, err := h.teamUsecase.TeamStats(r.Context(), managerID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute team stats")
		return
	}

	response.Success(w, http.StatusOK, "Team stats retrieved successfully", stats)
}

func (h *TeamHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SendRemindersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.teamUsecase.SendReminders(r.Context(), managerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Manager not found")
		default:
			response.InternalServerError(w, "Failed to send reminders")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminders sent successfully", result)
}
