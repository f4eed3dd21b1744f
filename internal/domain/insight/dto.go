package insight

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
)

type FeedbackType string

const (
	FeedbackPositive     FeedbackType = "positive"
	FeedbackConstructive FeedbackType = "constructive"
	FeedbackNeutral      FeedbackType = "neutral"
)

// PerformanceReview is one monthly rating.
type PerformanceReview struct {
	ID       int    `json:"id"`
	Date     string `json:"date"` // e.g. "Mar 2026"
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
	Reviewer string `json:"reviewer"`
}

type Project struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Status      ProjectStatus `json:"status"`
	StartDate   string        `json:"startDate"`
	EndDate     *string       `json:"endDate,omitempty"`
	Role        string        `json:"role"`
	Description string        `json:"description"`
}

type Feedback struct {
	ID      int          `json:"id"`
	Date    string       `json:"date"`
	Type    FeedbackType `json:"type"`
	Message string       `json:"message"`
	From    string       `json:"from"`
}
