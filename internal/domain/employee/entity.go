package employee

// ItemsPerPage is the size of one page of the roster view.
const ItemsPerPage = 12

// Rating bounds for Employee.Performance.
const (
	MinPerformance = 1
	MaxPerformance = 5
)

type Employee struct {
	ID          int     `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Age         int     `json:"age"`
	Department  string  `json:"department"`
	Performance int     `json:"performance"`
	Address     Address `json:"address"`
	Bio         string  `json:"bio"`

	// Only ever true on the copy held in the bookmark collection.
	IsBookmarked bool `json:"isBookmarked,omitempty"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// IsHighPerformer reports a rating of 4 or above.
func (e Employee) IsHighPerformer() bool {
	return e.Performance >= 4
}

// Page is one response of an EmployeeSource.
type Page struct {
	Employees []Employee
	HasMore   bool
}

// QueryState is a point-in-time view of a roster store's parameters.
type QueryState struct {
	SearchQuery      string   `json:"search_query"`
	DepartmentFilter []string `json:"department_filter"`
	RatingFilter     []int    `json:"rating_filter"`
	CurrentPage      int      `json:"current_page"`
	ItemsPerPage     int      `json:"items_per_page"`
	HasMore          bool     `json:"has_more"`
	TotalEmployees   int      `json:"total_employees"`
	TotalFiltered    int      `json:"total_filtered"`
	TotalBookmarked  int      `json:"total_bookmarked"`
}
