package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeSchema = `
	CREATE TABLE IF NOT EXISTS employees (
		id          INTEGER PRIMARY KEY,
		first_name  TEXT NOT NULL,
		last_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		age         INTEGER NOT NULL DEFAULT 0,
		department  TEXT NOT NULL,
		performance SMALLINT NOT NULL CHECK (performance BETWEEN 1 AND 5),
		address     TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		bio         TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// EnsureSchema implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) EnsureSchema(ctx context.Context) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, employeeSchema); err != nil {
		return fmt.Errorf("failed to create employees table: %w", err)
	}
	return nil
}

// FetchPage implements employee.EmployeeSource.
func (e *employeeRepositoryImpl) FetchPage(ctx context.Context, page, pageSize int) (employee.Page, error) {
	if page < 1 {
		return employee.Page{}, employee.ErrInvalidPage
	}
	if pageSize < 1 {
		return employee.Page{}, employee.ErrInvalidPageSize
	}

	q := GetQuerier(ctx, e.db)

	// One extra row tells whether another page exists.
	query := `
		SELECT id, first_name, last_name, email, phone, age, department, performance,
			address, city, state, postal_code, bio
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return employee.Page{}, fmt.Errorf("%w: failed to query employees: %v", employee.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0, pageSize+1)
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Age,
			&emp.Department, &emp.Performance,
			&emp.Address.Address, &emp.Address.City, &emp.Address.State, &emp.Address.PostalCode,
			&emp.Bio,
		)
		if err != nil {
			return employee.Page{}, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return employee.Page{}, fmt.Errorf("%w: error iterating employees: %v", employee.ErrSourceUnavailable, err)
	}

	hasMore := len(employees) > pageSize
	if hasMore {
		employees = employees[:pageSize]
	}
	return employee.Page{Employees: employees, HasMore: hasMore}, nil
}

// UpsertMany implements employee.EmployeeRepository. All rows are written in one transaction.
func (e *employeeRepositoryImpl) UpsertMany(ctx context.Context, employees []employee.Employee) (int, error) {
	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, age, department, performance,
			address, city, state, postal_code, bio
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			age = EXCLUDED.age,
			department = EXCLUDED.department,
			performance = EXCLUDED.performance,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			postal_code = EXCLUDED.postal_code,
			bio = EXCLUDED.bio,
			updated_at = NOW()
	`

	written := 0
	err := WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)
		for _, emp := range employees {
			_, err := q.Exec(txCtx, query,
				emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Age,
				emp.Department, emp.Performance,
				emp.Address.Address, emp.Address.City, emp.Address.State, emp.Address.PostalCode,
				emp.Bio,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert employee %d: %w", emp.ID, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
