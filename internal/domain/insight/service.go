package insight

import (
	"context"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
)

// EmployeeDetailResponse is everything the employee profile page shows.
type EmployeeDetailResponse struct {
	Employee           employee.Employee   `json:"employee"`
	IsBookmarked       bool                `json:"is_bookmarked"`
	PerformanceHistory []PerformanceReview `json:"performance_history"`
	Projects           []Project           `json:"projects"`
	Feedback           []Feedback          `json:"feedback"`
}

type InsightService interface {
	// GetEmployeeDetail returns a loaded employee with its review, project and feedback history
	GetEmployeeDetail(ctx context.Context, id int) (EmployeeDetailResponse, error)
}
