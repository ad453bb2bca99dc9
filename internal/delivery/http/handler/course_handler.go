package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rivergarden/training-backend/internal/delivery/http/middleware"
	"github.com/rivergarden/training-backend/internal/usecase"
	"github.com/rivergarden/training-backend/pkg/response"
)

type CourseHandler struct {
	courseUsecase usecase.CourseUsecase
}

func NewCourseHandler(courseUsecase usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	courses, err := h.courseUsecase.ListVisible(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to list courses")
		return
	}

	response.Success(w, http.StatusOK, "Courses retrieved successfully", courses)
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid course ID", nil)
		return
	}

	course, err := h.courseUsecase.GetCourse(r.Context(), courseID)
	if err != nil {
		switch err {
		case usecase.ErrCourseNotFound:
			response.NotFound(w, "Course not found")
		default:
			response.InternalServerError(w, "Failed to get course")
		}
		return
	}

	response.Success(w, http.StatusOK, "Course retrieved successfully", course)
}
