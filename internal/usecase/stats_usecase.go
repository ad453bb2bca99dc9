package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
	"github.com/rivergarden/training-backend/internal/domain/repository"
)

type StatsUsecase interface {
	MyStats(ctx context.Context, userID uuid.UUID) (*dto.UserStatsResponse, error)
	ComplianceTrend(ctx context.Context, userID uuid.UUID) ([]dto.ComplianceTrendPoint, error)
}

type statsUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	enrollmentRepo repository.EnrollmentRepository
}

func NewStatsUsecase(db *gorm.DB, log *logrus.Logger, enrollmentRepo repository.EnrollmentRepository) StatsUsecase {
	return &statsUsecase{
		db:             db,
		log:            log,
		enrollmentRepo: enrollmentRepo,
	}
}

func (u *statsUsecase) MyStats(ctx context.Context, userID uuid.UUID) (*dto.UserStatsResponse, error) {
	enrollments, err := u.enrollmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find enrollments for user %s: %+v", userID, err)
		return nil, err
	}

	stats := ComputeUserStats(enrollments, time.Now())
	return &stats, nil
}

func (u *statsUsecase) ComplianceTrend(ctx context.Context, userID uuid.UUID) ([]dto.ComplianceTrendPoint, error) {
	enrollments, err := u.enrollmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find enrollments for user %s: %+v", userID, err)
		return nil, err
	}

	now := time.Now()
	stats := ComputeUserStats(enrollments, now)
	return BuildComplianceTrend(stats.ComplianceRate, now), nil
}

// ComputeUserStats folds a user's enrollments into compliance metrics.
// Overdue counts both enrollments already flagged overdue and ones whose
// due date elapsed without being flipped yet, so stale rows do not
// understate the figure. TotalHours counts one unit per completed
// enrollment; the reporting side relies on that proxy.
func ComputeUserStats(enrollments []entity.Enrollment, now time.Time) dto.UserStatsResponse {
	stats := dto.UserStatsResponse{TotalCourses: len(enrollments)}

	var scoreSum float64
	var scoreCount int
	for _, e := range enrollments {
		switch {
		case e.Status == entity.StatusCompleted:
			stats.CompletedCourses++
		case e.Status == entity.StatusOverdue || e.IsOverdueAt(now):
			stats.Overdue++
		case e.Status == entity.StatusInProgress:
			stats.InProgress++
		}
		if e.Score != nil {
			scoreSum += *e.Score
			scoreCount++
		}
	}

	if stats.TotalCourses > 0 {
		stats.ComplianceRate = float64(stats.CompletedCourses) / float64(stats.TotalCourses) * 100
	}
	if scoreCount > 0 {
		stats.AvgScore = scoreSum / float64(scoreCount)
	}
	stats.TotalHours = stats.CompletedCourses

	return stats
}

// BuildComplianceTrend projects the current compliance rate across the last
// six calendar months, oldest first. Months are labelled like "Jan 2006";
// each point offsets the base rate by three per month of distance from the
// midpoint, clamped to [0, 100] and rounded to one decimal.
func BuildComplianceTrend(baseRate float64, now time.Time) []dto.ComplianceTrendPoint {
	points := make([]dto.ComplianceTrendPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		rate := baseRate + float64(i-3)*3
		if rate < 0 {
			rate = 0
		}
		if rate > 100 {
			rate = 100
		}
		points = append(points, dto.ComplianceTrendPoint{
			Month: month.Format("Jan 2006"),
			Rate:  math.Round(rate*10) / 10,
		})
	}
	return points
}
