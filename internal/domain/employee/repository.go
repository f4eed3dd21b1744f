package employee

import "context"

// EmployeeSource returns pages of the upstream roster. Pages are 1-based.
type EmployeeSource interface {
	FetchPage(ctx context.Context, page int, pageSize int) (Page, error)
}

// EmployeeRepository is a persistent roster that can also act as a source.
type EmployeeRepository interface {
	EmployeeSource
	EnsureSchema(ctx context.Context) error
	UpsertMany(ctx context.Context, employees []Employee) (int, error)
	Count(ctx context.Context) (int64, error)
}
