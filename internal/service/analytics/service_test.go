package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/service/roster"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: 1, FirstName: "Ada", Department: "Engineering", Performance: 5},
		{ID: 2, FirstName: "Bo", Department: "Sales", Performance: 2},
		{ID: 3, FirstName: "Cy", Department: "Engineering", Performance: 4},
		{ID: 4, FirstName: "Di", Department: "HR", Performance: 3},
	}
}

func userContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestOverview(t *testing.T) {
	employees := testEmployees()
	overview := Overview(employees, employees[:1])

	assert.Equal(t, 4, overview.TotalEmployees)
	assert.Equal(t, 3.5, overview.AverageRating)
	assert.Equal(t, 2, overview.HighPerformers)
	assert.Equal(t, 1, overview.TotalBookmarks)
	assert.Equal(t, 3, overview.DepartmentsCount)
}

func TestOverview_Empty(t *testing.T) {
	overview := Overview(nil, nil)

	assert.Equal(t, 0, overview.TotalEmployees)
	assert.Equal(t, 0.0, overview.AverageRating)
}

func TestDepartmentStats_FirstSeenOrder(t *testing.T) {
	employees := testEmployees()
	stats := DepartmentStats(employees, []employee.Employee{employees[2]})

	require.Len(t, stats, 3)
	assert.Equal(t, "Engineering", stats[0].Department)
	assert.Equal(t, 2, stats[0].EmployeeCount)
	assert.Equal(t, 4.5, stats[0].AverageRating)
	assert.Equal(t, 1, stats[0].BookmarkedCount)
	assert.Equal(t, "Sales", stats[1].Department)
	assert.Equal(t, 0, stats[1].BookmarkedCount)
	assert.Equal(t, "HR", stats[2].Department)
}

func TestRatingDistribution(t *testing.T) {
	buckets := RatingDistribution(testEmployees())

	require.Len(t, buckets, 5)
	counts := map[int]int{}
	for _, b := range buckets {
		counts[b.Rating] = b.Count
	}
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 1, 5: 1}, counts)
}

func TestBookmarkTrend_CountsBookmarksExistingAtEndOfDay(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	bookmarkedAt := map[int]time.Time{
		1: now.AddDate(0, 0, -10),
		2: now.AddDate(0, 0, -3),
		3: now.Add(-time.Hour),
	}

	trend := BookmarkTrend(bookmarkedAt, now)

	require.Len(t, trend, 7)
	assert.Equal(t, "Mar 9", trend[0].Date)
	assert.Equal(t, "Mar 15", trend[6].Date)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, 1, trend[2].Count)
	assert.Equal(t, 2, trend[3].Count)
	assert.Equal(t, 3, trend[6].Count)
}

func TestAnalyticsService_GetAnalytics(t *testing.T) {
	registry := roster.NewRegistry(nil)
	store := registry.Get("1").Store()
	store.SetEmployees(testEmployees())
	store.ToggleBookmark(1)
	store.ToggleBookmark(4)

	svc := NewAnalyticsService(registry)
	result, err := svc.GetAnalytics(userContext(t, "1"))

	require.NoError(t, err)
	assert.Equal(t, 4, result.Overview.TotalEmployees)
	assert.Equal(t, 2, result.Overview.TotalBookmarks)
	assert.Len(t, result.Departments, 3)
	assert.Len(t, result.RatingDistribution, 5)
	require.Len(t, result.BookmarkTrend, 7)
	assert.Equal(t, 2, result.BookmarkTrend[6].Count)
}

func TestAnalyticsService_SessionsAreIsolated(t *testing.T) {
	registry := roster.NewRegistry(nil)
	registry.Get("1").Store().SetEmployees(testEmployees())

	svc := NewAnalyticsService(registry)
	stats, err := svc.GetDepartmentStats(userContext(t, "2"))

	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestAnalyticsService_RequiresClaims(t *testing.T) {
	svc := NewAnalyticsService(roster.NewRegistry(nil))

	_, err := svc.GetAnalytics(context.Background())

	assert.Error(t, err)
}
