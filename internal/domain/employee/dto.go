package employee

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/validator"
)

const maxSearchLength = 100

// ============= Request DTOs =============

// UpdateQueryRequest replaces any subset of the filter criteria. Omitted fields are left as they are.
type UpdateQueryRequest struct {
	Search      *string   `json:"search,omitempty"`
	Departments *[]string `json:"departments,omitempty"`
	Ratings     *[]int    `json:"ratings,omitempty"`
}

func (r *UpdateQueryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Search == nil && r.Departments == nil && r.Ratings == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "query",
			Message: "at least one of search, departments or ratings is required",
		})
	}
	if r.Search != nil && len(*r.Search) > maxSearchLength {
		errs = append(errs, validator.ValidationError{
			Field:   "search",
			Message: fmt.Sprintf("search must not exceed %d characters", maxSearchLength),
		})
	}
	if r.Departments != nil {
		for _, dept := range *r.Departments {
			if validator.IsEmpty(dept) {
				errs = append(errs, validator.ValidationError{
					Field:   "departments",
					Message: "departments must not contain empty values",
				})
				break
			}
		}
	}
	if r.Ratings != nil {
		for _, rating := range *r.Ratings {
			if !validator.IsInRange(rating, MinPerformance, MaxPerformance) {
				errs = append(errs, validator.ValidationError{
					Field:   "ratings",
					Message: fmt.Sprintf("ratings must be between %d and %d", MinPerformance, MaxPerformance),
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize trims whitespace around department labels.
func (r *UpdateQueryRequest) Normalize() {
	if r.Departments == nil {
		return
	}
	trimmed := make([]string, 0, len(*r.Departments))
	for _, dept := range *r.Departments {
		trimmed = append(trimmed, strings.TrimSpace(dept))
	}
	r.Departments = &trimmed
}

type SetPageRequest struct {
	Page int `json:"page"`
}

func (r *SetPageRequest) Validate() error {
	if r.Page < 1 {
		return validator.ValidationErrors{{
			Field:   "page",
			Message: "page must be at least 1",
		}}
	}
	return nil
}

// ============= Response DTOs =============

// ListEmployeeResponse is the paginated roster view.
type ListEmployeeResponse struct {
	Employees     []Employee `json:"employees"`
	Page          int        `json:"page"`
	Limit         int        `json:"limit"`
	Shown         int        `json:"shown"`
	TotalFiltered int        `json:"total_filtered"`
	HasMore       bool       `json:"has_more"`
}

// StateResponse is the store snapshot plus the host's own loading/error state.
type StateResponse struct {
	Query     QueryState `json:"query"`
	IsLoading bool       `json:"is_loading"`
	Error     *string    `json:"error,omitempty"`
}

type ToggleBookmarkResponse struct {
	EmployeeID   int  `json:"employee_id"`
	IsBookmarked bool `json:"is_bookmarked"`
	Total        int  `json:"total_bookmarked"`
}
