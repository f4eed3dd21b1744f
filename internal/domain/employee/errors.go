package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrSourceUnavailable = errors.New("employee source unavailable")
	ErrLoadInProgress    = errors.New("a page load is already in progress")
	ErrNoMorePages       = errors.New("no more employees to load")
	ErrInvalidPage       = errors.New("page must be at least 1")
	ErrInvalidPageSize   = errors.New("page size must be at least 1")
)
