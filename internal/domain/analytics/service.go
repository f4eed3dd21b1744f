package analytics

import "context"

// AnalyticsService computes aggregate views over the caller's roster session
type AnalyticsService interface {
	// GetAnalytics returns every chart of the analytics page
	GetAnalytics(ctx context.Context) (*AnalyticsResponse, error)

	// GetDepartmentStats returns per-department counts and ratings in first-seen order
	GetDepartmentStats(ctx context.Context) ([]DepartmentStat, error)
}
