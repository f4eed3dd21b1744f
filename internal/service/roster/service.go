package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

const EventBookmarkToggled = "bookmark.toggled"

type RosterServiceImpl struct {
	registry *Registry
	hub      *sse.Hub
}

func NewRosterService(registry *Registry, hub *sse.Hub) employee.RosterService {
	return &RosterServiceImpl{
		registry: registry,
		hub:      hub,
	}
}

// SessionKeyFromContext returns the user_id claim that keys the caller's roster session.
func SessionKeyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

func (s *RosterServiceImpl) session(ctx context.Context) (*Session, string, error) {
	key, err := SessionKeyFromContext(ctx)
	if err != nil {
		return nil, "", err
	}
	return s.registry.Get(key), key, nil
}

// Load implements employee.RosterService.
func (s *RosterServiceImpl) Load(ctx context.Context) (employee.QueryState, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	if err := session.LoadFirstPage(ctx); err != nil {
		return employee.QueryState{}, err
	}
	return session.Store().Snapshot(), nil
}

// LoadMore implements employee.RosterService.
func (s *RosterServiceImpl) LoadMore(ctx context.Context) (employee.QueryState, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	if err := session.LoadNextPage(ctx); err != nil {
		return employee.QueryState{}, err
	}
	return session.Store().Snapshot(), nil
}

// ShowMore implements employee.RosterService.
func (s *RosterServiceImpl) ShowMore(ctx context.Context) (employee.QueryState, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	if err := session.ShowMore(ctx); err != nil {
		return employee.QueryState{}, err
	}
	return session.Store().Snapshot(), nil
}

// List implements employee.RosterService.
func (s *RosterServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	store := session.Store()

	page := store.PaginatedEmployees()
	state := store.Snapshot()
	return employee.ListEmployeeResponse{
		Employees:     page,
		Page:          state.CurrentPage,
		Limit:         state.ItemsPerPage,
		Shown:         len(page),
		TotalFiltered: state.TotalFiltered,
		HasMore:       state.HasMore,
	}, nil
}

// Filtered implements employee.RosterService.
func (s *RosterServiceImpl) Filtered(ctx context.Context) ([]employee.Employee, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return session.Store().FilteredEmployees(), nil
}

// State implements employee.RosterService.
func (s *RosterServiceImpl) State(ctx context.Context) (employee.StateResponse, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.StateResponse{}, err
	}
	return employee.StateResponse{
		Query:     session.Store().Snapshot(),
		IsLoading: session.IsLoading(),
		Error:     session.LastError(),
	}, nil
}

// UpdateQuery implements employee.RosterService.
func (s *RosterServiceImpl) UpdateQuery(ctx context.Context, req employee.UpdateQueryRequest) (employee.QueryState, error) {
	if err := req.Validate(); err != nil {
		return employee.QueryState{}, err
	}
	req.Normalize()

	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	store := session.Store()

	if req.Search != nil {
		store.SetSearchQuery(*req.Search)
	}
	if req.Departments != nil {
		store.SetDepartmentFilter(*req.Departments)
	}
	if req.Ratings != nil {
		store.SetRatingFilter(*req.Ratings)
	}
	return store.Snapshot(), nil
}

// ClearQuery implements employee.RosterService.
func (s *RosterServiceImpl) ClearQuery(ctx context.Context) (employee.QueryState, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	session.Store().ClearFilters()
	return session.Store().Snapshot(), nil
}

// SetPage implements employee.RosterService.
func (s *RosterServiceImpl) SetPage(ctx context.Context, req employee.SetPageRequest) (employee.QueryState, error) {
	if err := req.Validate(); err != nil {
		return employee.QueryState{}, err
	}
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	session.Store().SetCurrentPage(req.Page)
	return session.Store().Snapshot(), nil
}

// ResetPagination implements employee.RosterService.
func (s *RosterServiceImpl) ResetPagination(ctx context.Context) (employee.QueryState, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.QueryState{}, err
	}
	session.Store().ResetPagination()
	return session.Store().Snapshot(), nil
}

// Bookmarks implements employee.RosterService.
func (s *RosterServiceImpl) Bookmarks(ctx context.Context) ([]employee.Employee, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return session.Store().Bookmarked(), nil
}

// ToggleBookmark implements employee.RosterService.
func (s *RosterServiceImpl) ToggleBookmark(ctx context.Context, id int) (employee.ToggleBookmarkResponse, error) {
	session, key, err := s.session(ctx)
	if err != nil {
		return employee.ToggleBookmarkResponse{}, err
	}
	store := session.Store()

	// The store ignores unknown ids; the API reports them.
	if _, ok := store.Employee(id); !ok && !store.IsBookmarked(id) {
		return employee.ToggleBookmarkResponse{}, employee.ErrEmployeeNotFound
	}

	store.ToggleBookmark(id)
	result := employee.ToggleBookmarkResponse{
		EmployeeID:   id,
		IsBookmarked: store.IsBookmarked(id),
		Total:        len(store.Bookmarked()),
	}

	if s.hub != nil {
		s.hub.Publish(key, EventBookmarkToggled, result)
	}
	slog.Info("Bookmark toggled", "employee_id", id, "is_bookmarked", result.IsBookmarked)
	return result, nil
}

// GetEmployee implements employee.RosterService.
func (s *RosterServiceImpl) GetEmployee(ctx context.Context, id int) (employee.Employee, bool, error) {
	session, _, err := s.session(ctx)
	if err != nil {
		return employee.Employee{}, false, err
	}
	store := session.Store()

	emp, ok := store.Employee(id)
	if !ok {
		return employee.Employee{}, false, employee.ErrEmployeeNotFound
	}
	return emp, store.IsBookmarked(id), nil
}

// EndSession implements employee.RosterService.
func (s *RosterServiceImpl) EndSession(ctx context.Context) error {
	key, err := SessionKeyFromContext(ctx)
	if err != nil {
		return err
	}
	s.registry.Drop(key)
	return nil
}
