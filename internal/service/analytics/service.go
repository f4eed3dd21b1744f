package analytics

import (
	"context"
	"math"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/analytics"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/service/roster"
	"golang.org/x/sync/errgroup"
)

const trendDays = 7

type AnalyticsServiceImpl struct {
	registry *roster.Registry
	now      func() time.Time
}

func NewAnalyticsService(registry *roster.Registry) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		registry: registry,
		now:      time.Now,
	}
}

func (s *AnalyticsServiceImpl) store(ctx context.Context) (*roster.Store, error) {
	key, err := roster.SessionKeyFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.registry.Get(key).Store(), nil
}

// GetAnalytics builds all charts from one consistent read of the store, in parallel
func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context) (*analytics.AnalyticsResponse, error) {
	store, err := s.store(ctx)
	if err != nil {
		return nil, err
	}

	employees, bookmarked, bookmarkedAt := store.Contents()
	now := s.now()

	var (
		overview     analytics.OverviewResponse
		departments  []analytics.DepartmentStat
		distribution []analytics.RatingBucket
		trend        []analytics.BookmarkTrendPoint
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview = Overview(employees, bookmarked)
		return nil
	})
	g.Go(func() error {
		departments = DepartmentStats(employees, bookmarked)
		return nil
	})
	g.Go(func() error {
		distribution = RatingDistribution(employees)
		return nil
	})
	g.Go(func() error {
		trend = BookmarkTrend(bookmarkedAt, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &analytics.AnalyticsResponse{
		Overview:           overview,
		Departments:        departments,
		RatingDistribution: distribution,
		BookmarkTrend:      trend,
	}, nil
}

// GetDepartmentStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetDepartmentStats(ctx context.Context) ([]analytics.DepartmentStat, error) {
	store, err := s.store(ctx)
	if err != nil {
		return nil, err
	}
	employees, bookmarked, _ := store.Contents()
	return DepartmentStats(employees, bookmarked), nil
}

// Overview computes the summary cards.
func Overview(employees, bookmarked []employee.Employee) analytics.OverviewResponse {
	departments := make(map[string]struct{})
	total, high := 0, 0
	for _, e := range employees {
		total += e.Performance
		if e.IsHighPerformer() {
			high++
		}
		departments[e.Department] = struct{}{}
	}

	return analytics.OverviewResponse{
		TotalEmployees:   len(employees),
		AverageRating:    average(total, len(employees)),
		HighPerformers:   high,
		TotalBookmarks:   len(bookmarked),
		DepartmentsCount: len(departments),
	}
}

// DepartmentStats groups the roster by department in first-seen order.
func DepartmentStats(employees, bookmarked []employee.Employee) []analytics.DepartmentStat {
	isBookmarked := make(map[int]struct{}, len(bookmarked))
	for _, b := range bookmarked {
		isBookmarked[b.ID] = struct{}{}
	}

	type acc struct {
		count, ratingSum, bookmarked int
	}
	order := make([]string, 0)
	byDept := make(map[string]*acc)
	for _, e := range employees {
		a, ok := byDept[e.Department]
		if !ok {
			a = &acc{}
			byDept[e.Department] = a
			order = append(order, e.Department)
		}
		a.count++
		a.ratingSum += e.Performance
		if _, ok := isBookmarked[e.ID]; ok {
			a.bookmarked++
		}
	}

	stats := make([]analytics.DepartmentStat, 0, len(order))
	for _, dept := range order {
		a := byDept[dept]
		stats = append(stats, analytics.DepartmentStat{
			Department:      dept,
			EmployeeCount:   a.count,
			AverageRating:   average(a.ratingSum, a.count),
			BookmarkedCount: a.bookmarked,
		})
	}
	return stats
}

// RatingDistribution counts employees per rating, 1 through 5.
func RatingDistribution(employees []employee.Employee) []analytics.RatingBucket {
	counts := make([]int, employee.MaxPerformance+1)
	for _, e := range employees {
		if e.Performance >= employee.MinPerformance && e.Performance <= employee.MaxPerformance {
			counts[e.Performance]++
		}
	}

	buckets := make([]analytics.RatingBucket, 0, employee.MaxPerformance)
	for r := employee.MinPerformance; r <= employee.MaxPerformance; r++ {
		buckets = append(buckets, analytics.RatingBucket{Rating: r, Count: counts[r]})
	}
	return buckets
}

// BookmarkTrend returns one point per day for the last seven days, today last. Each point counts
// the bookmarks that existed at the end of that day.
func BookmarkTrend(bookmarkedAt map[int]time.Time, now time.Time) []analytics.BookmarkTrendPoint {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]analytics.BookmarkTrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		endOfDay := day.AddDate(0, 0, 1)

		count := 0
		for _, at := range bookmarkedAt {
			if at.Before(endOfDay) {
				count++
			}
		}
		points = append(points, analytics.BookmarkTrendPoint{
			Date:  day.Format("Jan 2"),
			Count: count,
		})
	}
	return points
}

// average rounds to one decimal; zero items average to 0.
func average(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}
