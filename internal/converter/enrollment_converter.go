package converter

import (
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func EnrollmentToResponse(enrollment *entity.Enrollment) *dto.EnrollmentResponse {
	if enrollment == nil {
		return nil
	}

	response := &dto.EnrollmentResponse{
		ID:            enrollment.ID,
		UserID:        enrollment.UserID,
		CourseID:      enrollment.CourseID,
		Status:        enrollment.Status.String(),
		Progress:      enrollment.Progress,
		Score:         enrollment.Score,
		StartedDate:   enrollment.StartedDate,
		CompletedDate: enrollment.CompletedDate,
		DueDate:       enrollment.DueDate,
		AssignedBy:    enrollment.AssignedBy,
		CreatedAt:     enrollment.CreatedAt,
	}

	// Course info is present only when the enrollment was loaded with its
	// course preloaded.
	if enrollment.Course.ID != 0 {
		response.CourseTitle = enrollment.Course.Title
		response.CourseCategory = enrollment.Course.Category.String()
	}

	return response
}

func EnrollmentsToResponses(enrollments []entity.Enrollment) []dto.EnrollmentResponse {
	responses := make([]dto.EnrollmentResponse, len(enrollments))
	for i, enrollment := range enrollments {
		responses[i] = *EnrollmentToResponse(&enrollment)
	}
	return responses
}
