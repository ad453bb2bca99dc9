package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
	"github.com/rivergarden/training-backend/pkg/validator"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecase.EnrollmentUsecase
	validator         *validator.CustomValidator
}

func NewEnrollmentHandler(enrollmentUsecase usecase.EnrollmentUsecase, validator *validator.CustomValidator) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUsecase: enrollmentUsecase,
		validator:         validator,
	}
}

// GetMyEnrollments handles listing the caller's enrollments
// @Summary List my enrollments
// @Description List the caller's enrollments with overdue statuses refreshed
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /enrollments [get]
func (h *EnrollmentHandler) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	enrollments, err := h.enrollmentUsecase.GetMyEnrollments(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list enrollments")
		return
	}

	response.Success(w, http.StatusOK, "Enrollments retrieved successfully", enrollments)
}

// Enroll handles self-enrollment in a course
// @Summary Enroll in a course
// @Description Enroll the caller in a course; re-enrolling returns the existing enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Enroll Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollment, err := h.enrollmentUsecase.Enroll(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCourseNotFound:
			response.NotFound(w, "Course not found")
		default:
			response.InternalServerError(w, "Failed to enroll")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Enrolled successfully", enrollment)
}

// UpdateProgress handles progress updates on an enrollment
// @Summary Update course progress
// @Description Advance progress on a course; progress never decreases and reaching 100 completes the course
// @Tags Enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param request body dto.UpdateProgressRequest true "Progress Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollments/{courseId}/progress [patch]
func (h *EnrollmentHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	courseID, err := strconv.Atoi(mux.Vars(r)["courseId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid course ID", nil)
		return
	}

	var req dto.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	enrollment, err := h.enrollmentUsecase.UpdateProgress(r.Context(), userID, courseID, req.Progress)
	if err != nil {
		switch err {
		case usecase.ErrEnrollmentNotFound:
			response.NotFound(w, "Enrollment not found")
		case usecase.ErrInvalidProgress:
			response.Error(w, http.StatusBadRequest, "Progress must be between 0 and 100", nil)
		default:
			response.InternalServerError(w, "Failed to update progress")
		}
		return
	}

	response.Success(w, http.StatusOK, "Progress updated successfully", enrollment)
}

// CompleteCourse handles marking an enrollment completed
// @Summary Complete a course
// @Description Mark the caller's enrollment completed and issue the certificate if absent
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollments/{courseId}/complete [post]
func (h *EnrollmentHandler) CompleteCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	courseID, err := strconv.Atoi(mux.Vars(r)["courseId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid course ID", nil)
		return
	}

	enrollment, err := h.enrollmentUsecase.ForceComplete(r.Context(), userID, courseID)
	if err != nil {
		switch err {
		case usecase.ErrEnrollmentNotFound:
			response.NotFound(w, "Enrollment not found")
		case usecase.ErrCourseNotFound:
			response.NotFound(w, "Course not found")
		default:
			response.InternalServerError(w, "Failed to complete course")
		}
		return
	}

	response.Success(w, http.StatusOK, "Course completed successfully", enrollment)
}
