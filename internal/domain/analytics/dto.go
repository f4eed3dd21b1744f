package analytics

// ========== COMBINED ANALYTICS ==========

// AnalyticsResponse is the combined response for the analytics page
type AnalyticsResponse struct {
	Overview           OverviewResponse     `json:"overview"`
	Departments        []DepartmentStat     `json:"departments"`
	RatingDistribution []RatingBucket       `json:"rating_distribution"`
	BookmarkTrend      []BookmarkTrendPoint `json:"bookmark_trend"`
}

// ========== OVERVIEW CARDS ==========

type OverviewResponse struct {
	TotalEmployees   int     `json:"total_employees"`
	AverageRating    float64 `json:"average_rating"`  // one decimal, 0 when empty
	HighPerformers   int     `json:"high_performers"` // performance >= 4
	TotalBookmarks   int     `json:"total_bookmarks"`
	DepartmentsCount int     `json:"departments_count"`
}

// ========== DEPARTMENT BAR CHART ==========

type DepartmentStat struct {
	Department      string  `json:"department"`
	EmployeeCount   int     `json:"employee_count"`
	AverageRating   float64 `json:"average_rating"`
	BookmarkedCount int     `json:"bookmarked_count"`
}

// ========== RATING DISTRIBUTION ==========

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// ========== BOOKMARK TREND (line chart) ==========

type BookmarkTrendPoint struct {
	Date  string `json:"date"` // e.g. "Mar 9"
	Count int    `json:"count"`
}
