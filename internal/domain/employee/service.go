package employee

import (
	"context"
)

// RosterService exposes the signed-in user's roster store. The session is taken from the JWT in ctx.
type RosterService interface {
	// Load replaces the roster with the first source page
	Load(ctx context.Context) (QueryState, error)

	// LoadMore appends the next source page
	LoadMore(ctx context.Context) (QueryState, error)

	// ShowMore extends the visible prefix, loading from the source when the local view is exhausted
	ShowMore(ctx context.Context) (QueryState, error)

	// List returns the paginated view
	List(ctx context.Context) (ListEmployeeResponse, error)

	// Filtered returns the full filtered view
	Filtered(ctx context.Context) ([]Employee, error)

	State(ctx context.Context) (StateResponse, error)
	UpdateQuery(ctx context.Context, req UpdateQueryRequest) (QueryState, error)
	ClearQuery(ctx context.Context) (QueryState, error)
	SetPage(ctx context.Context, req SetPageRequest) (QueryState, error)
	ResetPagination(ctx context.Context) (QueryState, error)

	Bookmarks(ctx context.Context) ([]Employee, error)
	ToggleBookmark(ctx context.Context, id int) (ToggleBookmarkResponse, error)

	// GetEmployee looks up a loaded employee and whether it is bookmarked
	GetEmployee(ctx context.Context, id int) (Employee, bool, error)

	// EndSession drops the caller's store
	EndSession(ctx context.Context) error
}
