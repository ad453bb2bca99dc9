package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func ptrFloat(f float64) *float64 { return &f }

func TestComputeUserStatsEmpty(t *testing.T) {
	stats := ComputeUserStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0.0, stats.ComplianceRate)
	assert.Equal(t, 0.0, stats.AvgScore)
	assert.Equal(t, 0, stats.TotalHours)
}

func TestComputeUserStats(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	enrollments := []entity.Enrollment{
		{Status: entity.StatusCompleted, Score: ptrFloat(90)},
		{Status: entity.StatusCompleted, Score: ptrFloat(80)},
		{Status: entity.StatusInProgress, DueDate: &future},
		{Status: entity.StatusOverdue, DueDate: &past},
	}

	stats := ComputeUserStats(enrollments, now)

	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 2, stats.CompletedCourses)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 50.0, stats.ComplianceRate)
	assert.Equal(t, 85.0, stats.AvgScore)
	assert.Equal(t, 2, stats.TotalHours)
}

func TestComputeUserStatsCountsStaleOverdue(t *testing.T) {
	// An in-progress enrollment whose due date elapsed counts as overdue
	// even if the stored status was never flipped.
	now := time.Now()
	past := now.Add(-time.Hour)

	stats := ComputeUserStats([]entity.Enrollment{
		{Status: entity.StatusInProgress, DueDate: &past},
	}, now)

	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 0, stats.InProgress)
}

func TestBuildComplianceTrend(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	points := BuildComplianceTrend(50, now)

	assert.Len(t, points, 6)
	assert.Equal(t, "Jan 2026", points[0].Month)
	assert.Equal(t, "Jun 2026", points[5].Month)

	// Oldest month sits furthest above the base, current month furthest below.
	assert.Equal(t, 56.0, points[0].Rate)
	assert.Equal(t, 41.0, points[5].Rate)
}

func TestBuildComplianceTrendClamps(t *testing.T) {
	now := time.Now()

	for _, p := range BuildComplianceTrend(99, now) {
		assert.LessOrEqual(t, p.Rate, 100.0)
	}
	for _, p := range BuildComplianceTrend(2, now) {
		assert.GreaterOrEqual(t, p.Rate, 0.0)
	}
}

func TestBuildComplianceTrendRoundsToOneDecimal(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	// 2 of 3 completed gives a repeating-decimal base rate.
	points := BuildComplianceTrend(200.0/3.0, now)

	assert.Equal(t, 72.7, points[0].Rate)
	assert.Equal(t, 57.7, points[5].Rate)
}

func TestComputeSupervisorStats(t *testing.T) {
	// Active counts in-progress enrollments, not distinct courses.
	enrollments := []entity.Enrollment{
		{CourseID: 1, Status: entity.StatusCompleted},
		{CourseID: 1, Status: entity.StatusInProgress},
		{CourseID: 2, Status: entity.StatusCompleted},
		{CourseID: 3, Status: entity.StatusNotStarted},
	}

	stats := ComputeSupervisorStats(3, enrollments)

	assert.Equal(t, 3, stats.TeamSize)
	assert.Equal(t, 1, stats.ActiveCourses)
	assert.Equal(t, 4, stats.TotalEnrollments)
	assert.Equal(t, 2, stats.CompletedCourses)
	assert.Equal(t, 50.0, stats.CompletionRate)
}

func TestComputeSupervisorStatsRoundsCompletionRate(t *testing.T) {
	enrollments := []entity.Enrollment{
		{CourseID: 1, Status: entity.StatusCompleted},
		{CourseID: 2, Status: entity.StatusInProgress},
		{CourseID: 3, Status: entity.StatusNotStarted},
	}

	stats := ComputeSupervisorStats(3, enrollments)

	assert.Equal(t, 33.3, stats.CompletionRate)
}

func TestComputeSupervisorStatsEmptyTeam(t *testing.T) {
	stats := ComputeSupervisorStats(0, nil)

	assert.Equal(t, 0, stats.TeamSize)
	assert.Equal(t, 0, stats.ActiveCourses)
	assert.Equal(t, 0.0, stats.CompletionRate)
}

func TestComputeTeamStatsPoolsEnrollments(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	// One member with a single completed enrollment, another with one
	// completion out of nine. Pooling weighs the busier member: 2/10.
	enrollments := []entity.Enrollment{
		{Status: entity.StatusCompleted},
		{Status: entity.StatusCompleted},
		{Status: entity.StatusOverdue, DueDate: &past},
	}
	for i := 0; i < 7; i++ {
		enrollments = append(enrollments, entity.Enrollment{Status: entity.StatusInProgress, DueDate: &future})
	}

	stats := ComputeTeamStats(2, enrollments, now)

	assert.Equal(t, 2, stats.TeamSize)
	assert.Equal(t, 20.0, stats.AvgCompliance)
	assert.Equal(t, 2, stats.TotalHours)
	assert.Equal(t, 1, stats.OverdueCount)
}

func TestComputeTeamStatsRoundsToWholeNumber(t *testing.T) {
	stats := ComputeTeamStats(1, []entity.Enrollment{
		{Status: entity.StatusCompleted},
		{Status: entity.StatusNotStarted},
		{Status: entity.StatusNotStarted},
	}, time.Now())

	assert.Equal(t, 33.0, stats.AvgCompliance)
}

func TestComputeTeamStatsEmpty(t *testing.T) {
	stats := ComputeTeamStats(0, nil, time.Now())

	assert.Equal(t, 0.0, stats.AvgCompliance)
	assert.Equal(t, 0, stats.OverdueCount)
}
