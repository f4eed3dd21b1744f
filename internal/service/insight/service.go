package insight

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/insight"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/fixtures"
)

const (
	historyMonths = 6
	feedbackCount = 5
	dateLayout    = "2006-01-02"
)

type InsightServiceImpl struct {
	rosterService employee.RosterService
	now           func() time.Time
}

func NewInsightService(rosterService employee.RosterService) insight.InsightService {
	return &InsightServiceImpl{
		rosterService: rosterService,
		now:           time.Now,
	}
}

// GetEmployeeDetail implements insight.InsightService.
func (s *InsightServiceImpl) GetEmployeeDetail(ctx context.Context, id int) (insight.EmployeeDetailResponse, error) {
	emp, bookmarked, err := s.rosterService.GetEmployee(ctx, id)
	if err != nil {
		return insight.EmployeeDetailResponse{}, err
	}

	now := s.now()
	return insight.EmployeeDetailResponse{
		Employee:           emp,
		IsBookmarked:       bookmarked,
		PerformanceHistory: PerformanceHistory(id, now),
		Projects:           Projects(id, now),
		Feedback:           Feedback(id, now),
	}, nil
}

// PerformanceHistory returns six monthly reviews ending with the month of now, oldest first.
func PerformanceHistory(employeeID int, now time.Time) []insight.PerformanceReview {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	history := make([]insight.PerformanceReview, 0, historyMonths)
	for i := historyMonths - 1; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)
		seed := employeeID + i
		history = append(history, insight.PerformanceReview{
			ID:       historyMonths - i,
			Date:     month.Format("Jan 2006"),
			Rating:   fixtures.PerformanceFor(seed),
			Feedback: fixtures.Pick(fixtures.ReviewComments, seed),
			Reviewer: fixtures.Pick(fixtures.Reviewers, seed),
		})
	}
	return history
}

// Projects returns the fixture projects with per-employee dates. Only completed projects have an end date.
func Projects(employeeID int, now time.Time) []insight.Project {
	today := truncateDay(now)

	projects := make([]insight.Project, 0, len(fixtures.ProjectTemplates))
	for i, tmpl := range fixtures.ProjectTemplates {
		p := tmpl
		p.ID = i + 1

		startDaysAgo := (employeeID*37+i*91)%365 + 31
		p.StartDate = today.AddDate(0, 0, -startDaysAgo).Format(dateLayout)

		if p.Status == insight.ProjectStatusCompleted {
			end := today.AddDate(0, 0, -((employeeID*11+i)%30 + 1)).Format(dateLayout)
			p.EndDate = &end
		}
		projects = append(projects, p)
	}
	return projects
}

// Feedback returns five notes from the last 90 days, newest first.
func Feedback(employeeID int, now time.Time) []insight.Feedback {
	today := truncateDay(now)

	type dated struct {
		daysAgo int
		item    insight.Feedback
	}
	entries := make([]dated, 0, feedbackCount)
	for i := 0; i < feedbackCount; i++ {
		seed := employeeID*13 + i*17
		daysAgo := seed % 90
		if daysAgo < 0 {
			daysAgo += 90
		}
		entries = append(entries, dated{
			daysAgo: daysAgo,
			item: insight.Feedback{
				ID:      i + 1,
				Date:    today.AddDate(0, 0, -daysAgo).Format(dateLayout),
				Type:    fixtures.Pick(fixtures.FeedbackTypes, employeeID+i),
				Message: fixtures.Pick(fixtures.FeedbackMessages, seed),
				From:    fixtures.Pick(fixtures.FeedbackSources, employeeID+i*3),
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].daysAgo < entries[j].daysAgo
	})

	feedback := make([]insight.Feedback, 0, len(entries))
	for _, e := range entries {
		feedback = append(feedback, e.item)
	}
	return feedback
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
