package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
	"github.com/rivergarden/training-backend/pkg/validator"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUsecase.AllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AdminHandler) AssignSupervisor(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.adminUsecase.AssignSupervisor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to assign supervisor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Supervisor assigned successfully", assignment)
}

func (h *AdminHandler) UnassignSupervisor(w http.ResponseWriter, r *http.Request) {
	var req dto.UnassignSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.adminUsecase.UnassignSupervisor(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrAssignmentNotFound:
			response.NotFound(w, "Assignment not found")
		default:
			response.InternalServerError(w, "Failed to unassign supervisor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supervisor unassigned successfully", nil)
}
