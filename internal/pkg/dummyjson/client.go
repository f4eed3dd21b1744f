package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/fixtures"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://dummyjson.com"

// Client reads the public demo users API as an employee.EmployeeSource.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond of 0 disables limiting.
	RequestsPerSecond float64
	Burst             int
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(limit, opts.Burst),
		logger:      logger,
	}
}

// FetchPage implements employee.EmployeeSource.
func (c *Client) FetchPage(ctx context.Context, page, pageSize int) (employee.Page, error) {
	if page < 1 {
		return employee.Page{}, employee.ErrInvalidPage
	}
	if pageSize < 1 {
		return employee.Page{}, employee.ErrInvalidPageSize
	}

	users, err := c.fetchUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return employee.Page{}, err
	}

	employees := make([]employee.Employee, 0, len(users.Users))
	for _, u := range users.Users {
		employees = append(employees, u.toEmployee())
	}

	return employee.Page{
		Employees: employees,
		HasMore:   users.Skip+len(users.Users) < users.Total,
	}, nil
}

func (c *Client) fetchUsers(ctx context.Context, limit, skip int) (*usersResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("skip", strconv.Itoa(skip))
	usersURL := c.baseURL + "/users?" + params.Encode()

	c.logger.Debug("fetching users", "url", usersURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, usersURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("users request: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: users request: %v", employee.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", employee.ErrSourceUnavailable, resp.StatusCode)
	}

	var users usersResponse
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", employee.ErrSourceUnavailable, err)
	}

	c.logger.Debug("users fetched", "count", len(users.Users), "skip", users.Skip, "total", users.Total)
	return &users, nil
}

type usersResponse struct {
	Users []user `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

type user struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`
	Address   struct {
		Address    string `json:"address"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postalCode"`
	} `json:"address"`
}

// toEmployee fills in the HR fields the users API does not have.
func (u user) toEmployee() employee.Employee {
	department := fixtures.DepartmentFor(u.ID)
	return employee.Employee{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		Age:         u.Age,
		Department:  department,
		Performance: fixtures.PerformanceFor(u.ID),
		Address: employee.Address{
			Address:    u.Address.Address,
			City:       u.Address.City,
			State:      u.Address.State,
			PostalCode: u.Address.PostalCode,
		},
		Bio: fixtures.BioFor(u.ID, department),
	}
}
