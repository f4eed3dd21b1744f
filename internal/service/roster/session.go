package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
)

// InitialPageSize is the size of the first source request. It is a multiple of ItemsPerPage so
// that later ItemsPerPage-sized requests line up with it.
const InitialPageSize = 2 * employee.ItemsPerPage

// Session hosts one Store: it fetches pages from the source, refuses overlapping loads and keeps
// the last load error. The store itself never sees a failed fetch.
type Session struct {
	store  *Store
	source employee.EmployeeSource

	mu         sync.Mutex
	loading    bool
	lastError  *string
	nextPage   int
	sourceDone bool
	lastAccess time.Time
}

func NewSession(source employee.EmployeeSource) *Session {
	return &Session{
		store:      NewStore(),
		source:     source,
		lastAccess: time.Now(),
	}
}

func (s *Session) Store() *Store {
	return s.store
}

// LoadFirstPage replaces the roster with the first InitialPageSize source rows.
func (s *Session) LoadFirstPage(ctx context.Context) error {
	if err := s.beginLoad(); err != nil {
		return err
	}

	page, err := s.source.FetchPage(ctx, 1, InitialPageSize)
	if err != nil {
		s.endLoad(err)
		return fmt.Errorf("failed to load employees: %w", err)
	}

	s.store.SetEmployees(page.Employees)
	if !page.HasMore {
		s.store.SetHasMore(false)
	}

	s.mu.Lock()
	s.nextPage = InitialPageSize/employee.ItemsPerPage + 1
	s.sourceDone = !page.HasMore
	s.mu.Unlock()

	s.endLoad(nil)
	slog.Debug("Roster loaded", "count", len(page.Employees), "has_more", page.HasMore)
	return nil
}

// LoadNextPage appends the next ItemsPerPage source rows.
func (s *Session) LoadNextPage(ctx context.Context) error {
	if !s.Loaded() {
		return s.LoadFirstPage(ctx)
	}
	if err := s.beginLoad(); err != nil {
		return err
	}

	s.mu.Lock()
	pageNumber := s.nextPage
	done := s.sourceDone || !s.store.HasMore()
	if done {
		s.loading = false
	}
	s.mu.Unlock()
	if done {
		return employee.ErrNoMorePages
	}

	page, err := s.source.FetchPage(ctx, pageNumber, employee.ItemsPerPage)
	if err != nil {
		s.endLoad(err)
		return fmt.Errorf("failed to load page %d: %w", pageNumber, err)
	}

	s.store.AddEmployees(page.Employees)
	if !page.HasMore {
		s.store.SetHasMore(false)
	}

	s.mu.Lock()
	s.nextPage = pageNumber + 1
	s.sourceDone = !page.HasMore
	s.mu.Unlock()

	s.endLoad(nil)
	slog.Debug("Roster page appended", "page", pageNumber, "count", len(page.Employees), "has_more", page.HasMore)
	return nil
}

// ShowMore grows the visible prefix by one page, pulling from the source only when every
// filtered row is already visible. Before the first load it just loads page one.
func (s *Session) ShowMore(ctx context.Context) error {
	if !s.Loaded() {
		return s.LoadFirstPage(ctx)
	}

	shown := len(s.store.PaginatedEmployees())
	total := len(s.store.FilteredEmployees())
	if shown < total {
		s.store.SetCurrentPage(s.store.CurrentPage() + 1)
		return nil
	}

	if err := s.LoadNextPage(ctx); err != nil {
		return err
	}
	if len(s.store.FilteredEmployees()) > shown {
		s.store.SetCurrentPage(s.store.CurrentPage() + 1)
	}
	return nil
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// LastError is the message of the most recent failed load, cleared by the next successful one.
func (s *Session) LastError() *string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastError == nil {
		return nil
	}
	msg := *s.lastError
	return &msg
}

// Loaded reports whether the first page has been fetched.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nextPage > 0
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastAccess = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastAccess
}

func (s *Session) beginLoad() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return employee.ErrLoadInProgress
	}
	s.loading = true
	return nil
}

func (s *Session) endLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err == nil {
		s.lastError = nil
		return
	}
	msg := "Failed to load employees"
	if errors.Is(err, context.Canceled) {
		msg = "Loading employees was cancelled"
	}
	s.lastError = &msg
	slog.Error("Roster load failed", "error", err)
}
