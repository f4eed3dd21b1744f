package roster

import (
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
)

// Store holds one session's roster, its view parameters and bookmarks.
// Every method is safe for concurrent use; returned slices never alias internal state.
type Store struct {
	mu sync.RWMutex

	employees    []employee.Employee
	bookmarked   []employee.Employee
	bookmarkedAt map[int]time.Time

	searchQuery      string
	departmentFilter []string
	ratingFilter     []int

	currentPage  int
	itemsPerPage int
	hasMore      bool

	now func() time.Time
}

// NewStore creates an empty store on page 1.
func NewStore() *Store {
	return &Store{
		bookmarkedAt: make(map[int]time.Time),
		currentPage:  1,
		itemsPerPage: employee.ItemsPerPage,
		hasMore:      true,
		now:          time.Now,
	}
}

// SetEmployees replaces the roster and restarts pagination.
func (s *Store) SetEmployees(list []employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = cloneEmployees(list)
	s.currentPage = 1
	s.hasMore = len(list) > s.itemsPerPage
}

// AddEmployees appends one incremental page. The current page is kept.
func (s *Store) AddEmployees(list []employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = append(cloneEmployees(s.employees), list...)
	s.hasMore = len(list) == s.itemsPerPage
}

// ToggleBookmark removes the bookmark for id, or snapshots the roster entry into the bookmarks.
// Ids that are not in the roster are ignored.
func (s *Store) ToggleBookmark(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.bookmarked, id); idx >= 0 {
		next := make([]employee.Employee, 0, len(s.bookmarked)-1)
		next = append(next, s.bookmarked[:idx]...)
		next = append(next, s.bookmarked[idx+1:]...)
		s.bookmarked = next
		delete(s.bookmarkedAt, id)
		return
	}

	idx := indexOf(s.employees, id)
	if idx < 0 {
		return
	}
	snapshot := s.employees[idx]
	snapshot.IsBookmarked = true

	next := make([]employee.Employee, 0, len(s.bookmarked)+1)
	next = append(next, s.bookmarked...)
	s.bookmarked = append(next, snapshot)
	s.bookmarkedAt[id] = s.now()
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = q
	s.currentPage = 1
}

func (s *Store) SetDepartmentFilter(departments []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.departmentFilter = append([]string(nil), departments...)
	s.currentPage = 1
}

func (s *Store) SetRatingFilter(ratings []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ratingFilter = append([]int(nil), ratings...)
	s.currentPage = 1
}

// ClearFilters empties all three criteria.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = ""
	s.departmentFilter = nil
	s.ratingFilter = nil
	s.currentPage = 1
}

// SetCurrentPage is not bounds checked.
func (s *Store) SetCurrentPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = n
}

func (s *Store) SetHasMore(b bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasMore = b
}

func (s *Store) ResetPagination() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = 1
	s.hasMore = true
}

// FilteredEmployees returns the roster entries matching every active criterion, in roster order.
func (s *Store) FilteredEmployees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filteredLocked()
}

// PaginatedEmployees returns the first currentPage*itemsPerPage filtered entries.
func (s *Store) PaginatedEmployees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	limit := s.currentPage * s.itemsPerPage
	if limit < 0 {
		limit = 0
	}
	if limit > len(filtered) {
		limit = len(filtered)
	}
	return filtered[:limit]
}

// Employees returns the whole roster in fetch order.
func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneEmployees(s.employees)
}

// Employee looks up a roster entry by id.
func (s *Store) Employee(id int) (employee.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := indexOf(s.employees, id)
	if idx < 0 {
		return employee.Employee{}, false
	}
	return s.employees[idx], true
}

// Bookmarked returns the bookmark snapshots in the order they were added.
func (s *Store) Bookmarked() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneEmployees(s.bookmarked)
}

func (s *Store) IsBookmarked(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return indexOf(s.bookmarked, id) >= 0
}

// BookmarkedAt returns when id was bookmarked.
func (s *Store) BookmarkedAt(id int) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.bookmarkedAt[id]
	return at, ok
}

// Contents returns the roster, the bookmark snapshots and their bookmark times from a single read.
func (s *Store) Contents() (employees, bookmarked []employee.Employee, bookmarkedAt map[int]time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmarkedAt = make(map[int]time.Time, len(s.bookmarkedAt))
	for id, at := range s.bookmarkedAt {
		bookmarkedAt[id] = at
	}
	return cloneEmployees(s.employees), cloneEmployees(s.bookmarked), bookmarkedAt
}

func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentPage
}

func (s *Store) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasMore
}

func (s *Store) ItemsPerPage() int {
	return s.itemsPerPage
}

// Snapshot returns the current view parameters and counts.
func (s *Store) Snapshot() employee.QueryState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return employee.QueryState{
		SearchQuery:      s.searchQuery,
		DepartmentFilter: append([]string{}, s.departmentFilter...),
		RatingFilter:     append([]int{}, s.ratingFilter...),
		CurrentPage:      s.currentPage,
		ItemsPerPage:     s.itemsPerPage,
		HasMore:          s.hasMore,
		TotalEmployees:   len(s.employees),
		TotalFiltered:    len(s.filteredLocked()),
		TotalBookmarked:  len(s.bookmarked),
	}
}

func (s *Store) filteredLocked() []employee.Employee {
	q := strings.ToLower(s.searchQuery)

	departments := make(map[string]struct{}, len(s.departmentFilter))
	for _, d := range s.departmentFilter {
		departments[d] = struct{}{}
	}
	ratings := make(map[int]struct{}, len(s.ratingFilter))
	for _, r := range s.ratingFilter {
		ratings[r] = struct{}{}
	}

	result := make([]employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if !matchesSearch(e, q) {
			continue
		}
		if len(departments) > 0 {
			if _, ok := departments[e.Department]; !ok {
				continue
			}
		}
		if len(ratings) > 0 {
			if _, ok := ratings[e.Performance]; !ok {
				continue
			}
		}
		result = append(result, e)
	}
	return result
}

// matchesSearch expects q to be lower-cased already.
func matchesSearch(e employee.Employee, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.FirstName), q) ||
		strings.Contains(strings.ToLower(e.LastName), q) ||
		strings.Contains(strings.ToLower(e.Email), q) ||
		strings.Contains(strings.ToLower(e.Department), q)
}

func indexOf(list []employee.Employee, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneEmployees(list []employee.Employee) []employee.Employee {
	if list == nil {
		return []employee.Employee{}
	}
	out := make([]employee.Employee, len(list))
	copy(out, list)
	return out
}
