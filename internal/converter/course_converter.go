package converter

import (
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func CourseToResponse(course *entity.Course) *dto.CourseResponse {
	if course == nil {
		return nil
	}

	roles := make([]string, len(course.AssignedRoles))
	for i, role := range course.AssignedRoles {
		roles[i] = role.String()
	}

	return &dto.CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Category:        course.Category.String(),
		Difficulty:      course.Difficulty.String(),
		Duration:        course.Duration,
		Modules:         course.Modules,
		Thumbnail:       course.Thumbnail,
		ExpiryDays:      course.ExpiryDays,
		AssignedRoles:   roles,
		DeliveryType:    course.DeliveryType.String(),
		VideoURL:        course.VideoURL,
		MeetingURL:      course.MeetingURL,
		MeetingPlatform: course.MeetingPlatform,
		CreatedAt:       course.CreatedAt,
	}
}

func CoursesToResponses(courses []entity.Course) []dto.CourseResponse {
	responses := make([]dto.CourseResponse, len(courses))
	for i, course := range courses {
		responses[i] = *CourseToResponse(&course)
	}
	return responses
}
