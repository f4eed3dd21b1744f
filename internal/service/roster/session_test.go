package roster

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	page, pageSize int
}

// fakeSource serves a fixed roster with offset (page-1)*pageSize.
type fakeSource struct {
	mu    sync.Mutex
	all   []employee.Employee
	err   error
	calls []fetchCall

	// When set, FetchPage signals entered and waits for release.
	entered chan struct{}
	release chan struct{}
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{all: makeEmployees(0, total)}
}

func (f *fakeSource) FetchPage(ctx context.Context, page, pageSize int) (employee.Page, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{page: page, pageSize: pageSize})
	err := f.err
	entered, release := f.entered, f.release
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}
	if err := ctx.Err(); err != nil {
		return employee.Page{}, err
	}
	if err != nil {
		return employee.Page{}, err
	}

	offset := (page - 1) * pageSize
	if offset >= len(f.all) {
		return employee.Page{Employees: []employee.Employee{}}, nil
	}
	end := offset + pageSize
	if end > len(f.all) {
		end = len(f.all)
	}
	return employee.Page{
		Employees: append([]employee.Employee(nil), f.all[offset:end]...),
		HasMore:   end < len(f.all),
	}, nil
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSource) fetches() []fetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fetchCall(nil), f.calls...)
}

func TestSession_LoadFirstPage(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)
	require.False(t, s.Loaded())

	err := s.LoadFirstPage(context.Background())

	require.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.False(t, s.IsLoading())
	assert.Nil(t, s.LastError())
	assert.Equal(t, []fetchCall{{page: 1, pageSize: InitialPageSize}}, source.fetches())
	assert.Len(t, s.Store().Employees(), InitialPageSize)
	assert.True(t, s.Store().HasMore())
	assert.Len(t, s.Store().PaginatedEmployees(), employee.ItemsPerPage)
}

func TestSession_LoadFirstPage_WholeSourceInFirstPage(t *testing.T) {
	source := newFakeSource(20)
	s := NewSession(source)

	require.NoError(t, s.LoadFirstPage(context.Background()))
	assert.Len(t, s.Store().Employees(), 20)
	assert.False(t, s.Store().HasMore(), "source reported no more rows")

	require.NoError(t, s.ShowMore(context.Background()))
	assert.Len(t, s.Store().PaginatedEmployees(), 20)

	err := s.ShowMore(context.Background())
	assert.ErrorIs(t, err, employee.ErrNoMorePages)
	assert.False(t, s.Store().HasMore())
	assert.Len(t, source.fetches(), 1)
}

func TestSession_LoadNextPage_ContinuesWhereFirstPageEnded(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)
	require.NoError(t, s.LoadFirstPage(context.Background()))

	require.NoError(t, s.LoadNextPage(context.Background()))
	require.NoError(t, s.LoadNextPage(context.Background()))

	assert.Equal(t, []fetchCall{
		{page: 1, pageSize: InitialPageSize},
		{page: 3, pageSize: employee.ItemsPerPage},
		{page: 4, pageSize: employee.ItemsPerPage},
	}, source.fetches())

	got := ids(s.Store().Employees())
	require.Len(t, got, 48)
	for i, id := range got {
		assert.Equal(t, i+1, id, "no gaps or duplicates between pages")
	}
}

func TestSession_LoadNextPage_BeforeFirstLoadLoadsFirstPage(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)

	require.NoError(t, s.LoadNextPage(context.Background()))

	assert.Equal(t, []fetchCall{{page: 1, pageSize: InitialPageSize}}, source.fetches())
}

func TestSession_LoadNextPage_SourceExhausted(t *testing.T) {
	source := newFakeSource(30)
	s := NewSession(source)
	require.NoError(t, s.LoadFirstPage(context.Background()))
	require.True(t, s.Store().HasMore())

	require.NoError(t, s.LoadNextPage(context.Background()))
	assert.Len(t, s.Store().Employees(), 30)
	assert.False(t, s.Store().HasMore())

	err := s.LoadNextPage(context.Background())
	assert.ErrorIs(t, err, employee.ErrNoMorePages)
	assert.False(t, s.IsLoading())
	assert.Len(t, source.fetches(), 2)
}

func TestSession_LoadNextPage_SmallRoster(t *testing.T) {
	source := newFakeSource(10)
	s := NewSession(source)
	require.NoError(t, s.LoadFirstPage(context.Background()))

	assert.False(t, s.Store().HasMore())
	assert.ErrorIs(t, s.LoadNextPage(context.Background()), employee.ErrNoMorePages)
}

func TestSession_LoadFailureRecordsError(t *testing.T) {
	source := newFakeSource(100)
	source.setErr(employee.ErrSourceUnavailable)
	s := NewSession(source)

	err := s.LoadFirstPage(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrSourceUnavailable)
	assert.False(t, s.IsLoading())
	assert.False(t, s.Loaded())
	require.NotNil(t, s.LastError())
	assert.Equal(t, "Failed to load employees", *s.LastError())
	assert.Empty(t, s.Store().Employees(), "a failed load leaves the roster untouched")

	source.setErr(nil)
	require.NoError(t, s.LoadFirstPage(context.Background()))
	assert.Nil(t, s.LastError(), "a successful load clears the error")
}

func TestSession_LoadNextPageFailureKeepsRoster(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)
	require.NoError(t, s.LoadFirstPage(context.Background()))

	source.setErr(errors.New("boom"))
	require.Error(t, s.LoadNextPage(context.Background()))
	assert.Len(t, s.Store().Employees(), InitialPageSize)

	source.setErr(nil)
	require.NoError(t, s.LoadNextPage(context.Background()))
	assert.Equal(t, fetchCall{page: 3, pageSize: employee.ItemsPerPage}, source.fetches()[2], "the failed page is retried")
}

func TestSession_CancelledLoad(t *testing.T) {
	s := NewSession(newFakeSource(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.LoadFirstPage(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, s.LastError())
	assert.Equal(t, "Loading employees was cancelled", *s.LastError())
}

func TestSession_RejectsOverlappingLoads(t *testing.T) {
	source := newFakeSource(100)
	source.entered = make(chan struct{})
	source.release = make(chan struct{})
	s := NewSession(source)

	done := make(chan error, 1)
	go func() {
		done <- s.LoadFirstPage(context.Background())
	}()
	<-source.entered

	assert.True(t, s.IsLoading())
	assert.ErrorIs(t, s.LoadFirstPage(context.Background()), employee.ErrLoadInProgress)
	assert.ErrorIs(t, s.LoadNextPage(context.Background()), employee.ErrLoadInProgress)

	close(source.release)
	require.NoError(t, <-done)
	assert.False(t, s.IsLoading())
	assert.Len(t, source.fetches(), 1)
}

func TestSession_ShowMore_RevealsLoadedRowsFirst(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)
	require.NoError(t, s.LoadFirstPage(context.Background()))

	require.NoError(t, s.ShowMore(context.Background()))
	assert.Equal(t, 2, s.Store().CurrentPage())
	assert.Len(t, s.Store().PaginatedEmployees(), 24)
	assert.Len(t, source.fetches(), 1, "rows already loaded need no fetch")

	require.NoError(t, s.ShowMore(context.Background()))
	assert.Equal(t, 3, s.Store().CurrentPage())
	assert.Len(t, s.Store().PaginatedEmployees(), 36)
	assert.Len(t, source.fetches(), 2)
}

func TestSession_ShowMore_Exhausted(t *testing.T) {
	s := NewSession(newFakeSource(10))
	require.NoError(t, s.LoadFirstPage(context.Background()))

	err := s.ShowMore(context.Background())

	assert.ErrorIs(t, err, employee.ErrNoMorePages)
	assert.Equal(t, 1, s.Store().CurrentPage())
}

func TestSession_ShowMore_BeforeFirstLoad(t *testing.T) {
	source := newFakeSource(100)
	s := NewSession(source)

	require.NoError(t, s.ShowMore(context.Background()))

	assert.Equal(t, 1, s.Store().CurrentPage())
	assert.Len(t, s.Store().PaginatedEmployees(), employee.ItemsPerPage)
	assert.Len(t, source.fetches(), 1)
}
