package dto

// UserStatsResponse aggregates one user's enrollments into compliance
// metrics. TotalHours counts one unit per completed enrollment rather than
// summing real durations; the reporting side depends on that proxy.
type UserStatsResponse struct {
	TotalCourses     int     `json:"total_courses"`
	CompletedCourses int     `json:"completed_courses"`
	InProgress       int     `json:"in_progress"`
	Overdue          int     `json:"overdue"`
	ComplianceRate   float64 `json:"compliance_rate"`
	AvgScore         float64 `json:"avg_score"`
	TotalHours       int     `json:"total_hours"`
}

type TeamStatsResponse struct {
	TeamSize      int     `json:"team_size"`
	AvgCompliance float64 `json:"avg_compliance"`
	TotalHours    int     `json:"total_hours"`
	OverdueCount  int     `json:"overdue_count"`
}

type SupervisorStatsResponse struct {
	TeamSize         int     `json:"team_size"`
	ActiveCourses    int     `json:"active_courses"`
	CompletionRate   float64 `json:"completion_rate"`
	TotalEnrollments int     `json:"total_enrollments"`
	CompletedCourses int     `json:"completed_courses"`
}

type ComplianceTrendPoint struct {
	Month string  `json:"month"`
	Rate  float64 `json:"rate"`
}
